package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGet(t *testing.T) {

	Convey("Config already defined", t, func() {
		cfg = DefaultConfig()
		config, err := Get()
		So(config, ShouldResemble, DefaultConfig())
		So(err, ShouldBeNil)
	})

	Convey("Successful get config", t, func() {
		cfg = nil // reset after previous tests
		config, err := Get()
		So(config, ShouldResemble, DefaultConfig())
		So(err, ShouldBeNil)
	})

}

func TestUnitDefaultConfig(t *testing.T) {
	Convey("Defaults point at the MoMo sandbox", t, func() {
		config := DefaultConfig()
		So(config.BindAddr, ShouldEqual, ":3001")
		So(config.MoMoBaseURL, ShouldEqual, "https://sandbox.momodeveloper.mtn.com")
		So(config.TargetEnvironment, ShouldEqual, "sandbox")
		So(config.IgnoreBalanceFailure, ShouldBeFalse)
		So(config.AllowedOrigins, ShouldBeEmpty)
		So(config.UpstreamTimeoutSeconds, ShouldEqual, 0)
		So(config.BrokerAddr, ShouldBeEmpty)
	})
}

func TestUnitValidate(t *testing.T) {
	Convey("Subscription key missing", t, func() {
		config := DefaultConfig()
		err := config.Validate()
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "SubscriptionKey")
	})

	Convey("Base URL not a url", t, func() {
		config := DefaultConfig()
		config.SubscriptionKey = "key"
		config.MoMoBaseURL = "not a url"
		So(config.Validate(), ShouldNotBeNil)
	})

	Convey("Negative timeout", t, func() {
		config := DefaultConfig()
		config.SubscriptionKey = "key"
		config.UpstreamTimeoutSeconds = -1
		So(config.Validate(), ShouldNotBeNil)
	})

	Convey("Broker without schema registry", t, func() {
		config := DefaultConfig()
		config.SubscriptionKey = "key"
		config.BrokerAddr = []string{"localhost:9092"}
		So(config.Validate(), ShouldNotBeNil)
	})

	Convey("Valid config", t, func() {
		config := DefaultConfig()
		config.SubscriptionKey = "key"
		So(config.Validate(), ShouldBeNil)
	})
}
