package render

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/temporal"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = fmt.Errorf("no sell prices to plot")

const (
	chartWidth   = 960
	chartHeight  = 480
	chartPadding = 60
)

var seriesColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#17becf",
}

// SVGRenderer plots per-user sell price series as an SVG line chart.
type SVGRenderer struct {
	// NameFor maps a ledger author id to a display name; nil leaves ids.
	NameFor func(authorID string) string
}

// RenderPrices draws the sell events in rows to outPath. When subject is
// non-empty only that author's series is drawn.
func (r *SVGRenderer) RenderPrices(rows []model.PriceEvent, subject string, outPath string) error {
	sells := temporal.FilterByKind(rows, model.KindSell)
	if subject != "" {
		sells = temporal.FilterByUser(sells, subject)
	}
	if len(sells) == 0 {
		return ErrNoData
	}

	groups, order := temporal.GroupByUser(sells)

	minTime, maxTime := sells[0].Timestamp, sells[0].Timestamp
	minPrice, maxPrice := sells[0].Price, sells[0].Price
	for _, ev := range sells {
		if ev.Timestamp.Before(minTime) {
			minTime = ev.Timestamp
		}
		if ev.Timestamp.After(maxTime) {
			maxTime = ev.Timestamp
		}
		if ev.Price < minPrice {
			minPrice = ev.Price
		}
		if ev.Price > maxPrice {
			maxPrice = ev.Price
		}
	}
	if maxPrice == minPrice {
		maxPrice = minPrice + 1
	}
	span := maxTime.Sub(minTime)
	if span == 0 {
		span = time.Hour
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		chartWidth, chartHeight, chartWidth, chartHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&b, `<text x="%d" y="24" font-family="sans-serif" font-size="16">Selling Prices</text>`+"\n", chartPadding)

	// Axis labels: price range and time range.
	fmt.Fprintf(&b, `<text x="8" y="%d" font-family="sans-serif" font-size="11">%d</text>`+"\n", chartPadding, maxPrice)
	fmt.Fprintf(&b, `<text x="8" y="%d" font-family="sans-serif" font-size="11">%d</text>`+"\n", chartHeight-chartPadding, minPrice)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">%s to %s</text>`+"\n",
		chartPadding, chartHeight-8,
		minTime.Format("Jan 02 15:04"), maxTime.Format("Jan 02 15:04"))

	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	x := func(ts time.Time) float64 {
		return float64(chartPadding) + plotW*float64(ts.Sub(minTime))/float64(span)
	}
	y := func(price int) float64 {
		return float64(chartHeight-chartPadding) - plotH*float64(price-minPrice)/float64(maxPrice-minPrice)
	}

	sort.Strings(order)
	for i, author := range order {
		series := groups[author]
		color := seriesColors[i%len(seriesColors)]

		points := make([]string, len(series))
		for j, ev := range series {
			points[j] = fmt.Sprintf("%.1f,%.1f", x(ev.Timestamp), y(ev.Price))
		}
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`+"\n",
			color, strings.Join(points, " "))
		for _, ev := range series {
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n",
				x(ev.Timestamp), y(ev.Price), color)
		}

		label := author
		if r.NameFor != nil {
			if name := r.NameFor(author); name != "" {
				label = name
			}
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			chartWidth-chartPadding+6, chartPadding+16*i, color, escapeXML(label))
	}

	b.WriteString("</svg>\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return replacer.Replace(s)
}
