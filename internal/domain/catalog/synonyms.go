package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/storefront-api/pkg/slug"
)

// SynonymGroup conjunto de slugs de categoría equivalentes (ej. men y mens).
// Suffix es el sufijo de género usado en slugs como "underwear-man"; puede estar vacío.
type SynonymGroup struct {
	Aliases []string `yaml:"aliases"`
	Suffix  string   `yaml:"suffix"`
}

type synonymFile struct {
	Groups []SynonymGroup `yaml:"groups"`
}

// SynonymTable tabla estática de alias de categoría. Se construye una vez al arrancar.
type SynonymTable struct {
	groups  []SynonymGroup
	byAlias map[string]int
}

// DefaultSynonyms tabla usada cuando no se configura un archivo.
func DefaultSynonyms() *SynonymTable {
	t, err := NewSynonymTable([]SynonymGroup{
		{Aliases: []string{"men", "mens"}, Suffix: "man"},
		{Aliases: []string{"ladies", "woman"}, Suffix: "woman"},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// NewSynonymTable valida y normaliza los grupos. Un alias no puede aparecer en dos grupos.
func NewSynonymTable(groups []SynonymGroup) (*SynonymTable, error) {
	t := &SynonymTable{byAlias: make(map[string]int)}
	for i, g := range groups {
		norm := SynonymGroup{Suffix: normalize(g.Suffix)}
		for _, a := range g.Aliases {
			a = normalize(a)
			if a == "" {
				continue
			}
			if prev, ok := t.byAlias[a]; ok && prev != len(t.groups) {
				return nil, fmt.Errorf("sinónimos: alias %q repetido en los grupos %d y %d", a, prev+1, i+1)
			}
			if _, ok := t.byAlias[a]; ok {
				continue
			}
			t.byAlias[a] = len(t.groups)
			norm.Aliases = append(norm.Aliases, a)
		}
		if len(norm.Aliases) == 0 {
			return nil, fmt.Errorf("sinónimos: el grupo %d no tiene alias", i+1)
		}
		t.groups = append(t.groups, norm)
	}
	return t, nil
}

// LoadSynonyms lee la tabla en YAML:
//
//	groups:
//	  - aliases: [men, mens]
//	    suffix: man
func LoadSynonyms(r io.Reader) (*SynonymTable, error) {
	var f synonymFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("sinónimos: decodificar yaml: %w", err)
	}
	return NewSynonymTable(f.Groups)
}

// LoadSynonymsFile lee la tabla desde path; path vacío devuelve la tabla por defecto.
func LoadSynonymsFile(path string) (*SynonymTable, error) {
	if path == "" {
		return DefaultSynonyms(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sinónimos: abrir %s: %w", path, err)
	}
	defer f.Close()
	return LoadSynonyms(f)
}

// Expand devuelve el slug literal seguido de sus alias, en minúsculas.
// Un slug sin grupo se expande a sí mismo.
func (t *SynonymTable) Expand(slug string) []string {
	slug = normalize(slug)
	if slug == "" {
		return nil
	}
	out := []string{slug}
	idx, ok := t.byAlias[slug]
	if !ok {
		return out
	}
	for _, a := range t.groups[idx].Aliases {
		if a != slug {
			out = append(out, a)
		}
	}
	return out
}

// Suffix devuelve el sufijo de género del grupo del slug, o "" si no tiene.
func (t *SynonymTable) Suffix(slug string) string {
	idx, ok := t.byAlias[normalize(slug)]
	if !ok {
		return ""
	}
	return t.groups[idx].Suffix
}

// NormalizeSlug limpieza única de slugs: la aplica el resolver a las entradas de la URL,
// a los slugs de las filas y a los alias de la tabla. Recorta, pasa a minúsculas, quita
// acentos y une palabras con guiones ("Niños " -> "ninos", "de hilo" -> "de-hilo").
func NormalizeSlug(s string) string {
	return slug.Normalize(s)
}

func normalize(s string) string {
	return NormalizeSlug(s)
}
