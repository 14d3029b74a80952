package normalize_test

import (
	"testing"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
	"github.com/perfdeck/perfdeck/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func row(athlete, name, m string, value any, date string) model.RawRow {
	return model.RawRow{
		AthleteID:   athlete,
		AthleteName: name,
		Metric:      m,
		Value:       value,
		Date:        date,
	}
}

func TestPoints(t *testing.T) {
	Convey("Given raw measurement rows", t, func() {
		Convey("When values arrive in heterogeneous encodings", func() {
			points, rep := normalize.Points([]model.RawRow{
				row("a1", "Ada", "SPRINT_TIME", 1.25, "2024-01-05"),
				row("a1", "Ada", "SPRINT_TIME", "1.30", "2024-01-06"),
				row("a1", "Ada", "SPRINT_TIME", []byte(" 1.28 "), "2024-01-07"),
				row("a1", "Ada", "SPRINT_TIME", int64(2), "2024-01-08"),
			})

			Convey("Then every point carries the parsed number", func() {
				So(len(points), ShouldEqual, 4)
				So(points[0].Value, ShouldEqual, 1.25)
				So(points[1].Value, ShouldEqual, 1.30)
				So(points[2].Value, ShouldEqual, 1.28)
				So(points[3].Value, ShouldEqual, 2.0)
				So(rep.CoercedValues, ShouldEqual, 0)
			})
		})

		Convey("When a value cannot be parsed", func() {
			points, rep := normalize.Points([]model.RawRow{
				row("a1", "Ada", "RSI", "not-a-number", "2024-01-05"),
				row("a1", "Ada", "RSI", nil, "2024-01-06"),
				row("a1", "Ada", "RSI", "NaN", "2024-01-07"),
			})

			Convey("Then coerce-or-zero substitutes 0 and never drops the row", func() {
				So(len(points), ShouldEqual, 3)
				for _, p := range points {
					So(p.Value, ShouldEqual, 0)
				}
				So(rep.CoercedValues, ShouldEqual, 3)
			})
		})

		Convey("When display names are empty or carry markup", func() {
			points, rep := normalize.Points([]model.RawRow{
				{AthleteID: "a1", AthleteName: "", Metric: "RSI", Value: 2.1, Date: "2024-01-05"},
				{AthleteID: "a2", AthleteName: "<script>x</script>Bo", TeamName: "<b>Reds</b>", Metric: "RSI", Value: 2.2, Date: "2024-01-05"},
				{AthleteID: "a3", AthleteName: "Cy", TeamID: "t1", TeamName: "", Metric: "RSI", Value: 2.3, Date: "2024-01-05"},
			})

			Convey("Then placeholders and stripped names are substituted", func() {
				So(points[0].AthleteName, ShouldEqual, normalize.UnknownAthlete)
				So(points[1].AthleteName, ShouldEqual, "xBo")
				So(points[1].TeamName, ShouldEqual, "Reds")
				So(points[2].TeamName, ShouldEqual, normalize.NoTeam)
				So(rep.SanitizedNames, ShouldBeGreaterThanOrEqualTo, 3)
			})
		})

		Convey("When the metric or date is unusable", func() {
			points, rep := normalize.Points([]model.RawRow{
				row("a1", "Ada", "", 1.0, "2024-01-05"),
				row("a1", "Ada", "RSI", 1.0, "never"),
				row("a1", "Ada", "RSI", 1.0, ""),
				row("a1", "Ada", "rsi", 1.0, "2024-01-05"),
			})

			Convey("Then those rows are dropped and identifiers are normalized", func() {
				So(len(points), ShouldEqual, 1)
				So(points[0].Metric, ShouldEqual, metric.RSI)
				So(rep.DroppedRows, ShouldEqual, 3)
			})
		})

		Convey("When dates carry a time component", func() {
			points, _ := normalize.Points([]model.RawRow{
				row("a1", "Ada", "RSI", 1.0, "2024-01-05T14:30:00Z"),
			})

			Convey("Then the point is truncated to the calendar day", func() {
				want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
				So(points[0].Date.Equal(want), ShouldBeTrue)
			})
		})
	})
}
