// Package storage resuelve las rutas de imágenes de producto a URLs servibles:
// URL pública del bucket o URL firmada de un backend S3-compatible.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// Resolver convierte una ruta guardada en la BD en una URL.
type Resolver interface {
	ImageURL(path string) string
}

// New elige el resolver según la configuración: sin S3Endpoint se usan URLs públicas.
func New(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (Resolver, error) {
	if cfg.S3Endpoint == "" {
		return NewPublic(cfg.PublicBaseURL, cfg.Bucket), nil
	}
	return NewPresigned(ctx, cfg, log)
}

// isAbsolute las URLs completas (CDN, imágenes importadas) se devuelven tal cual.
func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// objectKey quita la barra inicial y el prefijo del bucket si la ruta lo incluye.
func objectKey(bucket, path string) string {
	key := strings.TrimLeft(path, "/")
	if bucket != "" {
		key = strings.TrimPrefix(key, bucket+"/")
	}
	return key
}

// ── Público ──────────────────────────────────────────────────────────────────

// Public arma <base>/<bucket>/<ruta>, como el storage público de Supabase.
type Public struct {
	base   string
	bucket string
}

// NewPublic construye el resolver público. Base vacía deja las rutas sin cambios.
func NewPublic(base, bucket string) *Public {
	return &Public{base: strings.TrimRight(base, "/"), bucket: bucket}
}

// ImageURL devuelve la URL pública de path.
func (p *Public) ImageURL(path string) string {
	if path == "" || isAbsolute(path) || p.base == "" {
		return path
	}
	return p.base + "/" + p.bucket + "/" + objectKey(p.bucket, path)
}

// ── S3 firmado ───────────────────────────────────────────────────────────────

// Presigned firma GETs temporales contra un bucket S3-compatible (MinIO, R2, S3).
type Presigned struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
	log     *logger.Logger
}

// NewPresigned construye el cliente S3. Sin credenciales explícitas se usa la cadena por defecto de AWS.
func NewPresigned(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*Presigned, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket requerido")
	}
	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.S3AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage: cargar config aws: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3PathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	ttl := time.Duration(cfg.PresignTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Presigned{presign: s3.NewPresignClient(client), bucket: cfg.Bucket, ttl: ttl, log: log}, nil
}

// ImageURL devuelve una URL firmada; si la firma falla devuelve la ruta original.
func (p *Presigned) ImageURL(path string) string {
	if path == "" || isAbsolute(path) {
		return path
	}
	key := objectKey(p.bucket, path)
	out, err := p.presign.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) { po.Expires = p.ttl })
	if err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("no se pudo firmar la URL de imagen")
		return path
	}
	return out.URL
}
