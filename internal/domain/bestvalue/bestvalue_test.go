package bestvalue_test

import (
	"testing"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/bestvalue"
	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func point(athlete string, m metric.Metric, value float64, d int) model.MeasurementPoint {
	return model.MeasurementPoint{
		AthleteID:   athlete,
		AthleteName: athlete,
		Metric:      m,
		Value:       value,
		Date:        day(d),
	}
}

func TestFilter(t *testing.T) {
	reg := metric.NewDirectionRegistry()

	Convey("Given points for one athlete on a lower-is-better metric", t, func() {
		points := []model.MeasurementPoint{
			point("a1", metric.SprintTime, 1.2, 1),
			point("a1", metric.SprintTime, 0.9, 2),
			point("a1", metric.SprintTime, 1.5, 3),
		}

		Convey("When filtering in best mode", func() {
			got := bestvalue.Filter(points, model.TimeframeBest, reg)

			Convey("Then the minimum survives", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Value, ShouldEqual, 0.9)
			})
		})

		Convey("When the metric is higher-is-better instead", func() {
			flipped := make([]model.MeasurementPoint, len(points))
			for i, p := range points {
				p.Metric = metric.VerticalJump
				flipped[i] = p
			}
			got := bestvalue.Filter(flipped, model.TimeframeBest, reg)

			Convey("Then the maximum survives", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Value, ShouldEqual, 1.5)
			})
		})
	})

	Convey("Given duplicate trials on the same date", t, func() {
		points := []model.MeasurementPoint{
			point("a1", metric.SprintTime, 1.30, 1),
			point("a1", metric.SprintTime, 1.21, 1),
			point("a1", metric.SprintTime, 1.25, 2),
		}

		Convey("When filtering in trends mode", func() {
			got := bestvalue.Filter(points, model.TimeframeTrends, reg)

			Convey("Then one best point per day remains", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Value, ShouldEqual, 1.21)
				So(got[1].Value, ShouldEqual, 1.25)
			})
		})
	})

	Convey("Given an unknown timeframe type", t, func() {
		points := []model.MeasurementPoint{
			point("a1", metric.SprintTime, 1.30, 1),
			point("a1", metric.SprintTime, 1.21, 1),
		}

		got := bestvalue.Filter(points, model.TimeframeType("raw"), reg)

		Convey("Then points pass through unfiltered", func() {
			So(len(got), ShouldEqual, 2)
		})
	})

	Convey("Given equal values in one group", t, func() {
		first := point("a1", metric.VerticalJump, 23.5, 1)
		second := point("a1", metric.VerticalJump, 23.5, 2)
		got := bestvalue.Filter([]model.MeasurementPoint{first, second}, model.TimeframeBest, reg)

		Convey("Then the tie keeps the first-encountered point", func() {
			So(len(got), ShouldEqual, 1)
			So(got[0].Date.Equal(day(1)), ShouldBeTrue)
		})
	})

	Convey("Given an already-filtered set", t, func() {
		points := []model.MeasurementPoint{
			point("a1", metric.SprintTime, 1.2, 1),
			point("a2", metric.SprintTime, 1.1, 1),
			point("a1", metric.VerticalJump, 22, 2),
		}
		once := bestvalue.Filter(points, model.TimeframeBest, reg)
		twice := bestvalue.Filter(once, model.TimeframeBest, reg)

		Convey("Then filtering again is a no-op", func() {
			So(twice, ShouldResemble, once)
		})
	})

	Convey("Given a single-point group", t, func() {
		points := []model.MeasurementPoint{point("a1", metric.RSI, 2.4, 1)}
		got := bestvalue.Filter(points, model.TimeframeTrends, reg)

		Convey("Then it reduces to itself", func() {
			So(len(got), ShouldEqual, 1)
			So(got[0], ShouldResemble, points[0])
		})
	})
}
