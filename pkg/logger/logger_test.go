package logger

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerLifecycle(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := Get()
			So(l, ShouldNotBeNil)

			ctx := context.Background()
			So(func() {
				l.Debug(ctx, "debug message")
				l.Info(ctx, "info message", String("key", "value"))
				l.Warn(ctx, "warn message", Int("count", 3))
				l.Error(ctx, "error message", Error(errors.New("boom")))
			}, ShouldNotPanic)
		})

		Convey("Then Named returns a scoped logger", func() {
			l := Named("upstream")
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "scoped message", Int64("elapsed_ms", 12))
			}, ShouldNotPanic)
		})

		Convey("Then Sync is a no-op", func() {
			So(Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Then known levels parse case-insensitively", func() {
			for _, level := range []string{"debug", "INFO", "warn", "Warning", "error", ""} {
				So(SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown levels are rejected", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(String("a", "b"), ShouldResemble, Field{Key: "a", Value: "b"})
			So(Int("n", 1), ShouldResemble, Field{Key: "n", Value: 1})
			So(Int64("m", int64(2)), ShouldResemble, Field{Key: "m", Value: int64(2)})
			So(Any("x", 3.5), ShouldResemble, Field{Key: "x", Value: 3.5})

			err := errors.New("boom")
			So(Error(err).Key, ShouldEqual, "error")
		})
	})
}
