// Command aistrack is a terminal dashboard of recently-seen AIS
// stations: it reads sentences from standard input, decodes them
// through package frame, and keeps a TTL-expiring table keyed by MMSI.
// Like cmd/aisdump, it is a reference collaborator outside the codec.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/mattn/go-runewidth"
	"github.com/patrickmn/go-cache"

	"github.com/tidewatch/aivdm/ais"
	"github.com/tidewatch/aivdm/frame"
	"github.com/tidewatch/aivdm/mmsi"
)

const (
	stationTTL    = 5 * time.Minute
	sweepInterval = 1 * time.Minute
)

// station is one row of the tracking table, updated in place as new
// records arrive for its MMSI.
type station struct {
	mmsi     uint32
	class    mmsi.Class
	name     string
	lat, lon float64
	hasFix   bool
	seen     time.Time
}

type tracker struct {
	stations *cache.Cache
	ctx      *frame.AssemblyContext
}

func newTracker() *tracker {
	return &tracker{
		stations: cache.New(stationTTL, sweepInterval),
		ctx:      frame.NewAssemblyContext(),
	}
}

// ingest feeds one sentence into the reassembler and, on a completed
// record, updates or creates that MMSI's row.
func (t *tracker) ingest(line string) {
	outcome := frame.Decode(line, t.ctx)
	if outcome.Kind != frame.Message {
		return
	}
	t.update(outcome.Record)
}

func (t *tracker) update(rec *ais.AisRecord) {
	m := rec.Header.MMSI
	s := t.get(m)
	s.seen = time.Now()

	switch {
	case rec.PositionReportA != nil:
		s.lat = float64(rec.PositionReportA.Lat) / 600000
		s.lon = float64(rec.PositionReportA.Lon) / 600000
		s.hasFix = true
	case rec.ClassBPosition != nil:
		s.lat = float64(rec.ClassBPosition.Lat) / 600000
		s.lon = float64(rec.ClassBPosition.Lon) / 600000
		s.hasFix = true
	case rec.StaticAndVoyage != nil:
		s.name = rec.StaticAndVoyage.Shipname
	case rec.ClassBStatic != nil:
		s.name = rec.ClassBStatic.Shipname
	}
	t.stations.Set(key(m), s, cache.DefaultExpiration)
}

func (t *tracker) get(m uint32) *station {
	if v, ok := t.stations.Get(key(m)); ok {
		return v.(*station)
	}
	return &station{mmsi: m, class: mmsi.Classify(m)}
}

func (t *tracker) rows() []*station {
	items := t.stations.Items()
	out := make([]*station, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*station))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].mmsi < out[j].mmsi })
	return out
}

func key(m uint32) string { return fmt.Sprintf("%d", m) }

func main() {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	t := newTracker()
	g.SetManagerFunc(func(g *gocui.Gui) error { return layout(g, t) })
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			t.ingest(scanner.Text())
			g.Update(func(g *gocui.Gui) error { return nil })
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

func layout(g *gocui.Gui, t *tracker) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " STATUS "
	}
	status, _ := g.View("status")
	status.Clear()
	rows := t.rows()
	fmt.Fprintf(status, " stations: %d  updated: %s\n", len(rows), time.Now().Format("15:04:05"))

	if v, err := g.SetView("stations", 0, 3, maxX-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " STATIONS "
	}
	list, _ := g.View("stations")
	list.Clear()
	fmt.Fprintln(list, " MMSI      CLASS             NAME                  LAT       LON   SEEN")
	for _, s := range rows {
		name := runewidth.Truncate(s.name, 20, "")
		if s.hasFix {
			fmt.Fprintf(list, " %-9d %-17s %-20s %8.4f %9.4f %s\n",
				s.mmsi, s.class, name, s.lat, s.lon, s.seen.Format("15:04:05"))
		} else {
			fmt.Fprintf(list, " %-9d %-17s %-20s %8s %9s %s\n",
				s.mmsi, s.class, name, "-", "-", s.seen.Format("15:04:05"))
		}
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
