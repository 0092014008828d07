// Package events publica eventos de dominio en NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

var (
	_ home.EventPublisher = (*NatsPublisher)(nil)
	_ home.EventPublisher = NoopPublisher{}
)

// NatsPublisher publica en el subject igual al tipo de evento.
type NatsPublisher struct {
	conn *nats.Conn
	log  *logger.Logger
}

// NewNatsPublisher conecta al servidor NATS; reconecta indefinidamente si se pierde la conexión.
func NewNatsPublisher(natsURL, clientName string, log *logger.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name(clientName),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("nats desconectado")
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconectado")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: conectar: %w", err)
	}
	return &NatsPublisher{conn: nc, log: log}, nil
}

// PublishInquiryCreated serializa el evento a JSON y lo publica en home.inquiry.created.
func (p *NatsPublisher) PublishInquiryCreated(_ context.Context, event home.InquiryCreatedEvent) error {
	data, err := MarshalEvent(event)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(home.EventInquiryCreated, data); err != nil {
		return fmt.Errorf("nats: publicar %s: %w", home.EventInquiryCreated, err)
	}
	p.log.Debug().Str("subject", home.EventInquiryCreated).Str("message_id", event.MessageID).Msg("evento publicado")
	return nil
}

// Close vacía el buffer pendiente y cierra la conexión.
func (p *NatsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

// MarshalEvent completa event_type si falta y serializa a JSON.
func MarshalEvent(event home.InquiryCreatedEvent) ([]byte, error) {
	if event.EventType == "" {
		event.EventType = home.EventInquiryCreated
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("nats: serializar evento: %w", err)
	}
	return data, nil
}

// NoopPublisher descarta los eventos; se usa cuando NATS_URL no está configurado.
type NoopPublisher struct{}

// PublishInquiryCreated no hace nada.
func (NoopPublisher) PublishInquiryCreated(context.Context, home.InquiryCreatedEvent) error {
	return nil
}
