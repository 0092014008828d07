// Package storage adapta el almacenamiento de objetos (S3 o compatible) para las imágenes de inmuebles.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/pkg/config"
)

// UploadTTL vigencia de las URLs prefirmadas de subida.
const UploadTTL = 15 * time.Minute

var _ home.ImagePresigner = (*S3Presigner)(nil)

// S3Presigner genera URLs PUT prefirmadas para que el cliente suba directo al bucket.
type S3Presigner struct {
	presign *s3.PresignClient
	cfg     config.S3Config
}

// NewS3Presigner construye el cliente. Con Endpoint vacío usa el endpoint estándar de AWS.
func NewS3Presigner(ctx context.Context, cfg config.S3Config) (*S3Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Presigner{presign: s3.NewPresignClient(client), cfg: cfg}, nil
}

// PresignUpload devuelve la URL PUT prefirmada y su vencimiento.
func (p *S3Presigner) PresignUpload(ctx context.Context, objectKey, contentType string) (string, time.Time, error) {
	req, err := p.presign.PresignPutObject(ctx,
		&s3.PutObjectInput{
			Bucket:      aws.String(p.cfg.Bucket),
			Key:         aws.String(objectKey),
			ContentType: aws.String(contentType),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = UploadTTL
		},
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("s3: prefirmar PUT: %w", err)
	}
	return req.URL, time.Now().Add(UploadTTL), nil
}

// PublicURL URL de lectura del objeto una vez subido.
func (p *S3Presigner) PublicURL(objectKey string) string {
	key := (&url.URL{Path: objectKey}).EscapedPath()
	switch {
	case p.cfg.PublicBaseURL != "":
		return strings.TrimRight(p.cfg.PublicBaseURL, "/") + "/" + key
	case p.cfg.Endpoint != "":
		return strings.TrimRight(p.cfg.Endpoint, "/") + "/" + p.cfg.Bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.cfg.Bucket, p.cfg.Region, key)
	}
}
