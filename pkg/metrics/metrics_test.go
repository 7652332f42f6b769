package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording dispatch metrics", func() {
			Convey("Then it should record dispatch outcomes", func() {
				So(func() {
					RecordDispatch("overview", "success")
					RecordDispatch("event", "invalid_input")
					RecordDispatch("search", "payment_declined")
				}, ShouldNotPanic)
			})

			Convey("And it should accumulate revenue", func() {
				So(func() {
					AddRevenue("event", 1000)
					AddRevenue("search", 2000)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording upstream metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					ObserveUpstreamRequest("success", 120.0)
					ObserveUpstreamRequest("error", 15000.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording ledger metrics", func() {
			Convey("Then it should update the ledger size gauge", func() {
				So(func() {
					UpdateLedgerSize(0)
					UpdateLedgerSize(42)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("dispatch", "POST", "200")
					RecordHTTPRequestDuration("dispatch", "POST", "200", 12.0)
					RecordErrorByEndpoint("dispatch", "POST", "payment_required")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("Then it should be scrapeable", func() {
			registry := GetRegistry()
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeNil)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 8)

			for i := 0; i < 8; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordDispatch("overview", "success")
						UpdateLedgerSize(j)
						ObserveUpstreamRequest("success", float64(j))
					}
					done <- true
				}()
			}

			for i := 0; i < 8; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue)
			})
		})
	})
}
