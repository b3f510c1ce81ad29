// Command aisdump is the reference CLI harness for package frame: it
// reads AIVDM/AIVDO sentences one per line from standard input (or a
// serial device) and prints a dump of each decoded record. It is not
// part of the codec itself; I/O is an external collaborator around it.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tarm/serial"

	"github.com/tidewatch/aivdm/ais"
	"github.com/tidewatch/aivdm/frame"
	"github.com/tidewatch/aivdm/internal/utils"
)

func main() {
	devicePath := pflag.String("serial", "", "read sentences from this serial device instead of stdin")
	baudRate := pflag.Int("baud", 38400, "serial device baud rate")
	outputFormat := pflag.String("output-format", "text", "how to print decoded records (text, json)")
	quiet := pflag.Bool("quiet", false, "suppress per-sentence diagnostic logging")
	pflag.Parse()

	switch *outputFormat {
	case "text", "json":
	default:
		log.Fatal("unknown output format", "format", *outputFormat)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if *quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	var reader io.Reader = os.Stdin
	if *devicePath != "" {
		port, err := serial.OpenPort(&serial.Config{
			Name:        *devicePath,
			Baud:        *baudRate,
			ReadTimeout: 100 * time.Millisecond,
		})
		if err != nil {
			logger.Fatal("opening serial device", "device", *devicePath, "err", err)
		}
		defer port.Close()
		reader = port
	}

	decoded, errored, err := run(reader, os.Stdout, logger, *outputFormat)
	if err != nil {
		logger.Error("reading input", "err", err)
		os.Exit(1)
	}
	logger.Info("done", "decoded", decoded, "rejected", errored)
}

// run drains reader line by line through a fresh AssemblyContext, writing
// decoded records to out, and returns the decoded/rejected counts. It is
// the testable core of main: callers that aren't a live terminal or
// serial port (tests, pipelines) can exercise it directly.
func run(reader io.Reader, out io.Writer, logger *log.Logger, format string) (decoded, errored uint64, err error) {
	ctx := frame.NewAssemblyContext()
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		outcome := frame.Decode(line, ctx)
		switch outcome.Kind {
		case frame.Incomplete, frame.Partial24A:
			continue
		case frame.OutcomeError:
			errored++
			logger.Warn("rejected sentence", "line", utils.FormatSpaces([]byte(line)), "err", outcome.Err)
			continue
		case frame.Message:
			decoded++
			printRecord(out, outcome.Record, format)
		}
	}
	return decoded, errored, scanner.Err()
}

func printRecord(out io.Writer, rec *ais.AisRecord, format string) {
	if format == "json" {
		b, err := json.Marshal(rec)
		if err != nil {
			fmt.Fprintf(out, "# marshal error: %v\n", err)
			return
		}
		fmt.Fprintln(out, string(b))
		return
	}
	fmt.Fprintf(out, "type=%d repeat=%d mmsi=%d %+v\n", rec.Header.Type, rec.Header.Repeat, rec.Header.MMSI, payload(rec))
}

// payload returns whichever typed field of rec is populated, for the
// text dump; JSON output marshals the whole tagged struct instead, with
// every unpopulated payload field written as null.
func payload(rec *ais.AisRecord) interface{} {
	switch {
	case rec.PositionReportA != nil:
		return rec.PositionReportA
	case rec.BaseStation != nil:
		return rec.BaseStation
	case rec.StaticAndVoyage != nil:
		return rec.StaticAndVoyage
	case rec.ClassBPosition != nil:
		return rec.ClassBPosition
	case rec.ClassBExtended != nil:
		return rec.ClassBExtended
	case rec.ClassBStatic != nil:
		return rec.ClassBStatic
	case rec.AidToNavigation != nil:
		return rec.AidToNavigation
	default:
		return rec.Header
	}
}
