package handlers

import (
	"fmt"
	"sync"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"

	"github.com/momo-integration/momo-payments.api/config"
	"github.com/momo-integration/momo-payments.api/models"
)

// ProducerTopic is the topic to which the request to pay kafka message is sent
const ProducerTopic = "momo-request-to-pay"

// ProducerSchemaName is the schema which will be used to send the request to pay kafka message with
const ProducerSchemaName = "momo-request-to-pay"

// requestToPayEvent represents the avro schema registered as ProducerSchemaName
type requestToPayEvent struct {
	CustomerReference string `avro:"customer_reference"`
	ExternalID        string `avro:"external_id"`
	Amount            string `avro:"amount"`
	Currency          string `avro:"currency"`
}

// handleRequestToPayMessage allows us to mock the call to produceKafkaMessage for unit tests
var handleRequestToPayMessage = func(*models.RequestToPayResult, models.RequestToPay) error { return nil }

// requestToPayMessageProducer returns a no-op when no broker is configured
func requestToPayMessageProducer(cfg config.Config) func(*models.RequestToPayResult, models.RequestToPay) error {
	if len(cfg.BrokerAddr) == 0 {
		return func(*models.RequestToPayResult, models.RequestToPay) error { return nil }
	}

	return (&kafkaPublisher{cfg: cfg}).produceKafkaMessage
}

// kafkaPublisher holds the producer and schema shared by every request. Both are created on first
// use and retried on the next message if creation fails.
type kafkaPublisher struct {
	cfg    config.Config
	mtx    sync.Mutex
	send   func(*producer.Message) error
	schema *avro.Schema
}

// produceKafkaMessage marshals the event into the correct avro schema and sends the message to the
// topic defined in ProducerTopic
func (p *kafkaPublisher) produceKafkaMessage(result *models.RequestToPayResult, payment models.RequestToPay) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.send == nil {
		kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: p.cfg.BrokerAddr})
		if err != nil {
			return fmt.Errorf("error creating kafka producer: [%v]", err)
		}
		p.send = func(message *producer.Message) error {
			_, _, err := kafkaProducer.Send(message)
			return err
		}
	}

	if p.schema == nil {
		requestToPaySchema, err := schema.Get(p.cfg.SchemaRegistryURL, ProducerSchemaName)
		if err != nil {
			return fmt.Errorf("error getting schema from schema registry: [%v]", err)
		}
		p.schema = &avro.Schema{
			Definition: requestToPaySchema,
		}
	}

	message, err := prepareKafkaMessage(result, payment, *p.schema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	if err = p.send(message); err != nil {
		return fmt.Errorf("error sending request to pay message: [%v]", err)
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceKafkaMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(result *models.RequestToPayResult, payment models.RequestToPay, requestToPaySchema avro.Schema) (*producer.Message, error) {
	event := requestToPayEvent{
		CustomerReference: result.CustomerReference,
		ExternalID:        payment.ExternalID,
		Amount:            payment.Amount,
		Currency:          payment.Currency,
	}

	messageBytes, err := requestToPaySchema.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request to pay message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
