package schema_test

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"fightgate/internal/app/schema"
)

func TestValidate(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{8}$`)

	Convey("Given a schema with a required string and an optional int", t, func() {
		s := schema.New(
			schema.RequiredString("query"),
			schema.OptionalInt("limit", 10),
		)

		Convey("When the input is valid", func() {
			out, err := s.Validate(map[string]any{"query": "ufc", "limit": float64(3)})

			Convey("Then the validated copy carries typed values", func() {
				So(err, ShouldBeNil)
				So(schema.Str(out, "query"), ShouldEqual, "ufc")
				So(schema.Int(out, "limit", 0), ShouldEqual, 3)
			})
		})

		Convey("When the optional field is absent", func() {
			out, err := s.Validate(map[string]any{"query": "ufc"})

			Convey("Then the default applies", func() {
				So(err, ShouldBeNil)
				So(schema.Int(out, "limit", 0), ShouldEqual, 10)
			})
		})

		Convey("When the required field is missing", func() {
			_, err := s.Validate(map[string]any{})

			Convey("Then validation fails with the sentinel kind", func() {
				So(err, ShouldWrap, schema.ErrValidation)
			})
		})

		Convey("When the required field has the wrong type", func() {
			_, err := s.Validate(map[string]any{"query": 42})

			So(err, ShouldWrap, schema.ErrValidation)
		})

		Convey("When the int field is fractional", func() {
			_, err := s.Validate(map[string]any{"query": "ufc", "limit": 2.5})

			So(err, ShouldWrap, schema.ErrValidation)
		})

		Convey("When the int field is negative", func() {
			_, err := s.Validate(map[string]any{"query": "ufc", "limit": float64(-1)})

			So(err, ShouldWrap, schema.ErrValidation)
		})

		Convey("When unknown fields are present", func() {
			out, err := s.Validate(map[string]any{"query": "ufc", "bogus": true})

			Convey("Then they are dropped from the validated copy", func() {
				So(err, ShouldBeNil)
				_, present := out["bogus"]
				So(present, ShouldBeFalse)
			})
		})
	})

	Convey("Given a pattern-constrained field", t, func() {
		s := schema.New(schema.RequiredPattern("date", datePattern))

		Convey("Then 8-digit dates pass", func() {
			out, err := s.Validate(map[string]any{"date": "20260830"})
			So(err, ShouldBeNil)
			So(schema.Str(out, "date"), ShouldEqual, "20260830")
		})

		Convey("Then malformed dates fail", func() {
			_, err := s.Validate(map[string]any{"date": "2026-08-30"})
			So(err, ShouldWrap, schema.ErrValidation)
		})
	})

	Convey("Given an optional int with no default", t, func() {
		s := schema.New(schema.OptionalIntNoDefault("windowMs"))

		Convey("When the field is absent", func() {
			out, err := s.Validate(map[string]any{})

			Convey("Then it stays absent in the validated copy", func() {
				So(err, ShouldBeNil)
				_, present := out["windowMs"]
				So(present, ShouldBeFalse)
				So(schema.Int(out, "windowMs", 0), ShouldEqual, 0)
			})
		})
	})

	Convey("Given the empty schema", t, func() {
		s := schema.New()

		Convey("Then any object validates to empty input", func() {
			out, err := s.Validate(map[string]any{"whatever": 1})
			So(err, ShouldBeNil)
			So(out, ShouldBeEmpty)
		})
	})
}

func TestDescribe(t *testing.T) {
	Convey("Given a schema with mixed fields", t, func() {
		s := schema.New(
			schema.RequiredString("eventId"),
			schema.OptionalInt("limit", 50),
		)

		desc := s.Describe()

		Convey("Then the description is JSON-schema shaped", func() {
			So(desc["type"], ShouldEqual, "object")
			props, ok := desc["properties"].(map[string]any)
			So(ok, ShouldBeTrue)
			So(props, ShouldContainKey, "eventId")
			So(props, ShouldContainKey, "limit")
			So(desc["required"], ShouldResemble, []string{"eventId"})

			limit, ok := props["limit"].(map[string]any)
			So(ok, ShouldBeTrue)
			So(limit["default"], ShouldEqual, 50)
		})
	})
}
