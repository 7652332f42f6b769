package calendar_test

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"fightgate/internal/domain/calendar"
)

func eventAt(id string, date time.Time) map[string]any {
	return map[string]any{
		"id":           id,
		"name":         "Event " + id,
		"date":         date.Format(time.RFC3339),
		"competitions": []any{},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	Convey("Given five raw events where the first three are in the past", t, func() {
		events := []map[string]any{
			eventAt("1", now.Add(-72*time.Hour)),
			eventAt("2", now.Add(-48*time.Hour)),
			eventAt("3", now.Add(-24*time.Hour)),
			eventAt("4", now.Add(24*time.Hour)),
			eventAt("5", now.Add(48*time.Hour)),
		}

		Convey("When building with limit 3", func() {
			cal := calendar.Build(events, 3, now)

			Convey("Then truncation happens before classification and upcoming is empty", func() {
				So(cal.Upcoming, ShouldBeEmpty)
				So(cal.Completed, ShouldHaveLength, 3)
			})
		})

		Convey("When building with a limit covering the whole list", func() {
			cal := calendar.Build(events, 10, now)

			Convey("Then both buckets fill", func() {
				So(cal.Upcoming, ShouldHaveLength, 2)
				So(cal.Completed, ShouldHaveLength, 3)
				So(cal.Upcoming[0].ID, ShouldEqual, "4")
			})
		})

		Convey("When an event starts exactly now", func() {
			cal := calendar.Build([]map[string]any{eventAt("6", now)}, 10, now)

			Convey("Then it counts as upcoming", func() {
				So(cal.Upcoming, ShouldHaveLength, 1)
				So(cal.Completed, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a raw list preserving upstream order", t, func() {
		events := make([]map[string]any, 0, 6)
		for i := range 6 {
			events = append(events, eventAt(fmt.Sprintf("%d", i+1), now.Add(time.Duration(i-3)*24*time.Hour)))
		}

		Convey("When the limit is zero or negative", func() {
			cal := calendar.Build(events, 0, now)

			Convey("Then no truncation applies", func() {
				So(len(cal.Upcoming)+len(cal.Completed), ShouldEqual, 6)
			})
		})
	})
}
