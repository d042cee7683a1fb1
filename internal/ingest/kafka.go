package ingest

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"etlcore/internal/apperr"
	"etlcore/internal/frame"
)

// wireRecord is the JSON shape published to and consumed from the bus —
// plain field names, no schema coupling, since a message bus consumer
// may be running a different dataset variant than the producer.
type wireRecord struct {
	ID              int64   `json:"id"`
	IDSource        *string `json:"id_source,omitempty"`
	Nom             *string `json:"nom,omitempty"`
	Prenom          *string `json:"prenom,omitempty"`
	Civilite        *string `json:"civilite,omitempty"`
	RaisonSociale   *string `json:"raison_sociale,omitempty"`
	Email           *string `json:"email,omitempty"`
	Telephone       *string `json:"telephone,omitempty"`
	Siret           *string `json:"siret,omitempty"`
	SiretSuccesseur *string `json:"siret_successeur,omitempty"`
	Siren           *string `json:"siren,omitempty"`
	APE             *string `json:"ape,omitempty"`
	CodeNAF         *string `json:"code_naf,omitempty"`
	LibelleNAF      *string `json:"libele_naf,omitempty"`
	PCE             *string `json:"pce,omitempty"`
	IDs             *string `json:"ids,omitempty"`
	ClusterRef      *string `json:"cluster_ref,omitempty"`
}

func toWire(r frame.Record) wireRecord {
	return wireRecord{
		ID: int64(r.ID), IDSource: r.IDSource, Nom: r.Nom, Prenom: r.Prenom,
		Civilite: r.Civilite, RaisonSociale: r.RaisonSociale, Email: r.Email,
		Telephone: r.Telephone, Siret: r.Siret, SiretSuccesseur: r.SiretSuccesseur,
		Siren: r.Siren, APE: r.APE, CodeNAF: r.CodeNAF, LibelleNAF: r.LibelleNAF,
		PCE: r.PCE, IDs: r.IDs, ClusterRef: r.ClusterRef,
	}
}

func fromWire(w wireRecord) frame.Record {
	return frame.Record{
		ID: frame.RecordID(w.ID), IDSource: w.IDSource, Nom: w.Nom, Prenom: w.Prenom,
		Civilite: w.Civilite, RaisonSociale: w.RaisonSociale, Email: w.Email,
		Telephone: w.Telephone, Siret: w.Siret, SiretSuccesseur: w.SiretSuccesseur,
		Siren: w.Siren, APE: w.APE, CodeNAF: w.CodeNAF, LibelleNAF: w.LibelleNAF,
		PCE: w.PCE, IDs: w.IDs, ClusterRef: w.ClusterRef,
	}
}

// KafkaProducer publishes reconciled records as JSON to a configured
// topic.
type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer dials no connection eagerly; kafka.Writer connects
// lazily on first WriteMessages call.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// Publish marshals and writes every record in f as one Kafka message.
func (p *KafkaProducer) Publish(ctx context.Context, f frame.Frame) error {
	messages := make([]kafka.Message, 0, len(f.Records))
	for _, r := range f.Records {
		payload, err := json.Marshal(toWire(r))
		if err != nil {
			return apperr.EgressError("failed to marshal record for kafka", err)
		}
		messages = append(messages, kafka.Message{Value: payload})
	}
	if len(messages) == 0 {
		return nil
	}
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return apperr.EgressError("failed to publish records to kafka", err)
	}
	return nil
}

// KafkaConsumer reads JSON records back off a topic to feed the
// pipeline's ingress side.
type KafkaConsumer struct {
	reader *kafka.Reader
}

// NewKafkaConsumer opens a reader bound to a single topic using the
// given consumer group.
func NewKafkaConsumer(brokers []string, topic, groupID string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

// Close releases the underlying connection.
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}

// ReadN consumes up to n messages (or until ctx is cancelled) and
// decodes them into Records.
func (c *KafkaConsumer) ReadN(ctx context.Context, n int) ([]frame.Record, error) {
	records := make([]frame.Record, 0, n)
	for i := 0; i < n; i++ {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return records, apperr.IngressError("failed to read kafka message", err)
		}
		var w wireRecord
		if err := json.Unmarshal(msg.Value, &w); err != nil {
			return records, apperr.IngressError("failed to unmarshal kafka message", err)
		}
		records = append(records, fromWire(w))
	}
	return records, nil
}
