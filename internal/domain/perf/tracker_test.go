package perf_test

import (
	"testing"
	"time"

	"github.com/swashington/snas/internal/domain/perf"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a tracker with a 100ms SLA", t, func() {
		tracker := perf.NewTracker(perf.WithSLA(100 * time.Millisecond))

		Convey("When observing calls on both sides of the threshold", func() {
			So(tracker.ObserveCall(40*time.Millisecond), ShouldBeTrue)
			So(tracker.ObserveCall(100*time.Millisecond), ShouldBeTrue)
			So(tracker.ObserveCall(160*time.Millisecond), ShouldBeFalse)

			snap := tracker.Snapshot()

			Convey("Then the counters and rolling average line up", func() {
				So(snap.APICallCount, ShouldEqual, 3)
				So(snap.SLAViolations, ShouldEqual, 1)
				So(snap.AverageResponseMS, ShouldAlmostEqual, 100, 0.001)
			})
		})

		Convey("When recording cache outcomes", func() {
			tracker.RecordCacheHit()
			tracker.RecordCacheHit()
			tracker.RecordCacheMiss()

			snap := tracker.Snapshot()

			Convey("Then hits and misses are tallied separately", func() {
				So(snap.CacheHits, ShouldEqual, 2)
				So(snap.CacheMisses, ShouldEqual, 1)
			})
		})

		Convey("Two trackers never share state", func() {
			other := perf.NewTracker()
			tracker.RecordCacheHit()
			So(other.Snapshot().CacheHits, ShouldEqual, 0)
		})
	})
}
