package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/srarq/srarq"
	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/logging"
	"github.com/srarq/srarq/metrics"
	"github.com/srarq/srarq/qlog"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const defaultAddr = "127.0.0.1:6543"

func main() {
	if err := createApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "srarq: %s\n", err)
		os.Exit(1)
	}
}

func createApp(stdin io.Reader, stdout io.Writer) *cli.App {
	addrFlag := &cli.StringFlag{
		Name:    "addr",
		Aliases: []string{"a"},
		Usage:   "connect to or listen on `ADDRESS`",
		Value:   defaultAddr,
		EnvVars: []string{"SRARQ_ADDR"},
	}
	segmentsFlag := &cli.IntFlag{
		Name:    "segments",
		Aliases: []string{"n"},
		Usage:   "send `N` segments, prompt if not set",
		EnvVars: []string{"SRARQ_SEGMENTS"},
	}
	return &cli.App{
		Name:      "srarq",
		Usage:     "transfer segments with Selective-Repeat ARQ over TCP",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "log level, one of debug, info, error, nothing",
				EnvVars: []string{"SRARQ_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "serve Prometheus metrics on `ADDRESS`",
				EnvVars: []string{"SRARQ_METRICS_ADDR"},
			},
			&cli.StringFlag{
				Name:    "qlog-dir",
				Usage:   "write a qlog file for every session to `DIR`",
				EnvVars: []string{"QLOGDIR"},
			},
			&cli.Int64Flag{
				Name:  "initial-window",
				Usage: "initial congestion window, in segments",
			},
			&cli.Int64Flag{
				Name:  "max-window",
				Usage: "maximum congestion window, in segments",
			},
			&cli.DurationFlag{
				Name:  "rtt-margin",
				Usage: "added to the latest RTT to obtain the retransmission timeout",
			},
			&cli.DurationFlag{
				Name:  "idle-timeout",
				Usage: "end the session if nothing was received for this long",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:  "send",
				Usage: "send segments to a receiver",
				Flags: []cli.Flag{addrFlag, segmentsFlag},
				Action: func(c *cli.Context) error {
					n, err := segmentCount(c)
					if err != nil {
						return err
					}
					stats, err := srarq.Send(c.Context, c.String("addr"), n, buildConfig(c))
					if stats != nil {
						printSenderStats(c.App.Writer, stats)
					}
					return err
				},
			},
			{
				Name:  "receive",
				Usage: "serve a single session",
				Flags: []cli.Flag{addrFlag},
				Action: func(c *cli.Context) error {
					conf := buildConfig(c)
					ln, err := srarq.Listen(c.String("addr"), conf)
					if err != nil {
						return err
					}
					defer ln.Close()
					fmt.Fprintf(c.App.Writer, "Listening on %s\n", ln.Addr())
					stats, err := srarq.Receive(c.Context, ln, conf)
					if stats != nil {
						printReceiverStats(c.App.Writer, stats)
					}
					return err
				},
			},
			{
				Name:  "demo",
				Usage: "run a sender and a receiver over the loopback interface",
				Flags: []cli.Flag{segmentsFlag},
				Action: func(c *cli.Context) error {
					n, err := segmentCount(c)
					if err != nil {
						return err
					}
					return runDemo(c.Context, c.App.Writer, n, buildConfig(c))
				},
			},
		},
	}
}

func setup(c *cli.Context) error {
	level, err := utils.ParseLogLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		utils.DefaultLogger.SetLogLevel(level)
	}
	if addr := c.String("metrics-addr"); addr != "" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("serving metrics: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.Serve(ln, mux); err != nil {
				utils.DefaultLogger.Errorf("Metrics server failed: %s", err)
			}
		}()
	}
	return nil
}

func buildConfig(c *cli.Context) *srarq.Config {
	var tracers []func(context.Context, logging.Perspective) *logging.SessionTracer
	if c.String("metrics-addr") != "" {
		tracers = append(tracers, metrics.DefaultTracer())
	}
	if dir := c.String("qlog-dir"); dir != "" {
		tracers = append(tracers, qlog.DirTracer(dir))
	}
	conf := &srarq.Config{
		InitialWindowSize: srarq.WindowSize(c.Int64("initial-window")),
		MaxWindowSize:     srarq.WindowSize(c.Int64("max-window")),
		RTTMargin:         c.Duration("rtt-margin"),
		MaxIdleTimeout:    c.Duration("idle-timeout"),
	}
	if len(tracers) > 0 {
		conf.Tracer = func(ctx context.Context, p logging.Perspective) *logging.SessionTracer {
			ts := make([]*logging.SessionTracer, 0, len(tracers))
			for _, t := range tracers {
				if tr := t(ctx, p); tr != nil {
					ts = append(ts, tr)
				}
			}
			return logging.NewMultiplexedSessionTracer(ts...)
		}
	}
	return conf
}

func segmentCount(c *cli.Context) (int, error) {
	if n := c.Int("segments"); n > 0 {
		return n, nil
	}
	return promptSegments(c.App.Reader, c.App.Writer)
}

// promptSegments asks for the number of segments until a positive integer is entered.
func promptSegments(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Total number of segments: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.New("no segment count given")
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(w, "Please enter a positive integer.")
	}
}

func runDemo(ctx context.Context, w io.Writer, totalSegments int, conf *srarq.Config) error {
	ln, err := srarq.Listen("127.0.0.1:0", conf)
	if err != nil {
		return err
	}
	defer ln.Close()

	var senderStats *srarq.SenderStats
	var receiverStats *srarq.ReceiverStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		receiverStats, err = srarq.Receive(ctx, ln, conf)
		return err
	})
	g.Go(func() error {
		var err error
		senderStats, err = srarq.Send(ctx, ln.Addr().String(), totalSegments, conf)
		return err
	})
	err = g.Wait()
	if senderStats != nil {
		printSenderStats(w, senderStats)
	}
	if receiverStats != nil {
		printReceiverStats(w, receiverStats)
	}
	return err
}

func printSenderStats(w io.Writer, s *srarq.SenderStats) {
	fmt.Fprintf(w, "Acknowledgments received: %d of %d\n", s.AcksReceived, s.Segments)
	fmt.Fprintf(w, "Transmissions: %d (%d retransmissions, %d losses)\n", s.Transmissions, s.Retransmissions, s.Losses)
	fmt.Fprintf(w, "Goodput: %.4f\n", s.Goodput)
	if s.DuplicateAcks > 0 || s.Anomalies > 0 || s.DroppedTokens > 0 {
		fmt.Fprintf(w, "Duplicate acknowledgments: %d, anomalies: %d, dropped tokens: %d\n", s.DuplicateAcks, s.Anomalies, s.DroppedTokens)
	}
	fmt.Fprintf(w, "Final window: %d segments\n", s.FinalWindowSize)
	fmt.Fprintf(w, "RTT: handshake %s, min %s, smoothed %s, latest %s\n", s.HandshakeRTT, s.MinRTT, s.SmoothedRTT, s.LatestRTT)
	fmt.Fprintf(w, "Duration: %s\n", s.Duration)
}

func printReceiverStats(w io.Writer, s *srarq.ReceiverStats) {
	fmt.Fprintf(w, "Segments received: %d (%d duplicates)\n", s.SegmentsReceived, s.Duplicates)
	fmt.Fprintf(w, "Acknowledgments sent: %d\n", s.AcksSent)
	if s.Anomalies > 0 || s.DroppedTokens > 0 {
		fmt.Fprintf(w, "Anomalies: %d, dropped tokens: %d\n", s.Anomalies, s.DroppedTokens)
	}
	fmt.Fprintf(w, "Duration: %s\n", s.Duration)
}
