package handlers

import (
	"errors"
	"testing"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/momo-integration/momo-payments.api/fixtures"
	"github.com/momo-integration/momo-payments.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRequestToPayMessage(t *testing.T) {
	result := &models.RequestToPayResult{CustomerReference: "customer-ref", PaymentAccepted: true}

	Convey("No broker configured", t, func() {
		produce := requestToPayMessageProducer(testConfig())
		So(produce(result, fixtures.GetRequestToPay()), ShouldBeNil)
	})

	Convey("Successful message preparation with prepareKafkaMessage", t, func() {
		schema := `{
			"type": "record",
			"name": "momo_request_to_pay",
			"namespace": "payments",
			"fields": [
			{"name": "customer_reference", "type": "string"},
			{"name": "external_id", "type": "string"},
			{"name": "amount", "type": "string"},
			{"name": "currency", "type": "string"}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, err := prepareKafkaMessage(result, fixtures.GetRequestToPay(), *producerSchema)
		So(err, ShouldBeNil)
		So(message.Topic, ShouldEqual, ProducerTopic)

		unmarshalled := requestToPayEvent{}
		So(producerSchema.Unmarshal(message.Value, &unmarshalled), ShouldBeNil)
		So(unmarshalled, ShouldResemble, requestToPayEvent{
			CustomerReference: "customer-ref",
			ExternalID:        "ext-1",
			Amount:            "100",
			Currency:          "EUR",
		})
	})

	Convey("Unsuccessful message preparation with prepareKafkaMessage", t, func() {
		// amount has the wrong type so marshalling fails
		schema := `{
			"type": "record",
			"name": "momo_request_to_pay",
			"namespace": "payments",
			"fields": [
			{"name": "customer_reference", "type": "string"},
			{"name": "external_id", "type": "string"},
			{"name": "amount", "type": "int"},
			{"name": "currency", "type": "string"}
			]
		}`

		_, err := prepareKafkaMessage(result, fixtures.GetRequestToPay(), avro.Schema{Definition: schema})
		So(err, ShouldNotBeNil)
	})

	Convey("One producer and schema serve every message", t, func() {
		var sent []*producer.Message
		publisher := &kafkaPublisher{
			cfg:    testConfig(),
			schema: &avro.Schema{Definition: requestToPaySchema},
			send: func(message *producer.Message) error {
				sent = append(sent, message)
				return nil
			},
		}

		So(publisher.produceKafkaMessage(result, fixtures.GetRequestToPay()), ShouldBeNil)
		So(publisher.produceKafkaMessage(result, fixtures.GetRequestToPay()), ShouldBeNil)
		So(sent, ShouldHaveLength, 2)
		So(sent[1].Topic, ShouldEqual, ProducerTopic)
	})

	Convey("Send failure is reported", t, func() {
		publisher := &kafkaPublisher{
			cfg:    testConfig(),
			schema: &avro.Schema{Definition: requestToPaySchema},
			send:   func(*producer.Message) error { return errors.New("broker down") },
		}

		err := publisher.produceKafkaMessage(result, fixtures.GetRequestToPay())
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "broker down")
	})
}

const requestToPaySchema = `{
	"type": "record",
	"name": "momo_request_to_pay",
	"namespace": "payments",
	"fields": [
	{"name": "customer_reference", "type": "string"},
	{"name": "external_id", "type": "string"},
	{"name": "amount", "type": "string"},
	{"name": "currency", "type": "string"}
	]
}`
