// Package locations descarga el dataset de regiones, provincias y ciudades de Filipinas
// que usa el selector de direcciones, sin la lista de barangays.
package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultURL dataset público (2019v2) con regiones, provincias, municipios y barangays.
const DefaultURL = "https://raw.githubusercontent.com/flores-jacob/philippine-regions-provinces-cities-municipalities-barangays/master/philippine_provinces_cities_municipalities_and_barangays_2019v2.json"

// Region región con sus provincias.
type Region struct {
	Name      string              `json:"region_name"`
	Provinces map[string]Province `json:"province_list"`
}

// Province provincia con sus municipios/ciudades.
type Province struct {
	Municipalities map[string]Municipality `json:"municipality_list"`
}

// Municipality se serializa como {} en la salida compacta.
type Municipality struct{}

// City fila plana para la semilla SQL de ph_cities.
type City struct {
	Name     string
	Province string
	Region   string
}

// Fetcher descarga el dataset.
type Fetcher struct {
	httpClient *resty.Client
	url        string
}

// NewFetcher construye el cliente; url vacía usa DefaultURL.
func NewFetcher(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		httpClient: resty.New().SetHeader("Accept", "application/json"),
		url:        url,
	}
}

// Fetch descarga y compacta el dataset.
func (f *Fetcher) Fetch(ctx context.Context) ([]Region, error) {
	res, err := f.httpClient.NewRequest().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("locations: descargar dataset: %w", err)
	}
	body := res.RawBody()
	defer func() { _ = body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("locations: descargar dataset: status %d", res.StatusCode())
	}
	return Parse(body)
}

// rawRegion forma del dataset de origen; los barangays se descartan al decodificar.
type rawRegion struct {
	Name      string `json:"region_name"`
	Provinces map[string]struct {
		Municipalities map[string]json.RawMessage `json:"municipality_list"`
	} `json:"province_list"`
}

// Parse acepta el dataset como objeto {código: región} o como arreglo de regiones.
// Las regiones de un objeto se ordenan por código.
func Parse(r io.Reader) ([]Region, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("locations: decodificar dataset: %w", err)
	}
	var list []rawRegion
	switch strings.TrimSpace(string(raw))[0] {
	case '[':
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("locations: decodificar regiones: %w", err)
		}
	case '{':
		var byCode map[string]rawRegion
		if err := json.Unmarshal(raw, &byCode); err != nil {
			return nil, fmt.Errorf("locations: decodificar regiones: %w", err)
		}
		codes := make([]string, 0, len(byCode))
		for code := range byCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			reg := byCode[code]
			if reg.Name == "" {
				reg.Name = code
			}
			list = append(list, reg)
		}
	default:
		return nil, fmt.Errorf("locations: formato de dataset no reconocido")
	}

	out := make([]Region, 0, len(list))
	for _, rr := range list {
		reg := Region{Name: rr.Name, Provinces: make(map[string]Province, len(rr.Provinces))}
		for provName, p := range rr.Provinces {
			prov := Province{Municipalities: make(map[string]Municipality, len(p.Municipalities))}
			for muni := range p.Municipalities {
				prov.Municipalities[muni] = Municipality{}
			}
			reg.Provinces[provName] = prov
		}
		out = append(out, reg)
	}
	return out, nil
}

// WriteJSON escribe el dataset compacto.
func WriteJSON(w io.Writer, regions []Region) error {
	return json.NewEncoder(w).Encode(regions)
}

// Cities aplana el dataset ordenado por región, provincia y nombre.
func Cities(regions []Region) []City {
	var out []City
	for _, reg := range regions {
		for provName, prov := range reg.Provinces {
			for muni := range prov.Municipalities {
				out = append(out, City{Name: muni, Province: provName, Region: reg.Name})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Province != b.Province {
			return a.Province < b.Province
		}
		return a.Name < b.Name
	})
	return out
}

// WriteCitiesSQL escribe una semilla idempotente para ph_cities. La zona de envío se asigna aparte.
func WriteCitiesSQL(w io.Writer, regions []Region) error {
	cities := Cities(regions)
	if len(cities) == 0 {
		_, err := io.WriteString(w, "-- sin ciudades\n")
		return err
	}
	var b strings.Builder
	b.WriteString("-- Generado por storectl locations update. No editar a mano.\n")
	b.WriteString("INSERT INTO ph_cities (name, province, region)\nSELECT v.name, v.province, v.region FROM (VALUES\n")
	for i, c := range cities {
		fmt.Fprintf(&b, "    (%s, %s, %s)", quote(c.Name), quote(c.Province), quote(c.Region))
		if i < len(cities)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(") AS v(name, province, region)\n")
	b.WriteString("WHERE NOT EXISTS (\n    SELECT 1 FROM ph_cities c WHERE lower(c.name) = lower(v.name) AND c.province = v.province\n);\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
