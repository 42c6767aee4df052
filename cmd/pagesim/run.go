package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/pagesim/config"
	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/monitoring"
	"github.com/sarchlab/pagesim/session"
	"github.com/sarchlab/pagesim/sim/timing"
	"github.com/sarchlab/pagesim/tracing"
)

// defaultDuration is how long a page runs without a script or a duration.
const defaultDuration = 10 * time.Second

// runStep is how much virtual time passes between progress updates.
const runStep = timing.VTimeInSec(0.5)

type runOptions struct {
	pageFile   string
	markup     string
	scriptFile string
	duration   time.Duration
	traceDB    string
	clickHouse string
	mySQL      string
	mongoDB    string
	monitor    bool
	port       int
	open       bool
	hold       bool
	verbose    bool
	logEvents  bool
	output     string
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a page, replay a script and print the final state.",
	Long: `run loads a page, replays the input script against it and prints ` +
		`a YAML snapshot of every component once the run ends. Settings ` +
		`come from the page file, then from PAGESIM_* variables (also read ` +
		`from .env), then from the flags.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}

		opts := runOpts.withEnv(env, cmd)

		return runPage(opts, env, cmd.OutOrStdout())
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.pageFile, "page", "", "page settings file (YAML)")
	f.StringVar(&runOpts.markup, "markup", "", "page markup, overrides the page file")
	f.StringVar(&runOpts.scriptFile, "script", "", "visitor input script (YAML)")
	f.DurationVar(&runOpts.duration, "duration", 0,
		"virtual time to run, defaults to one second past the script")
	f.StringVar(&runOpts.traceDB, "trace", "",
		"record transitions into this SQLite database (without extension)")
	f.StringVar(&runOpts.clickHouse, "clickhouse", "",
		"record transitions into ClickHouse instead, given as a DSN")
	f.StringVar(&runOpts.mySQL, "mysql", "",
		"record transitions into MySQL instead, given as a DSN")
	f.StringVar(&runOpts.mongoDB, "mongodb", "",
		"also dump transitions into a new database on this MongoDB URI")
	f.BoolVar(&runOpts.monitor, "monitor", false, "serve the monitoring API")
	f.IntVar(&runOpts.port, "port", 0, "monitoring port, random when 0")
	f.BoolVar(&runOpts.open, "open", false, "open the monitoring API in a browser")
	f.BoolVar(&runOpts.hold, "hold", false,
		"keep the monitor up after the run until interrupted")
	f.BoolVarP(&runOpts.verbose, "verbose", "v", false, "log component transitions")
	f.BoolVar(&runOpts.logEvents, "log-events", false, "log every engine event")
	f.StringVarP(&runOpts.output, "output", "o", "", "write the snapshot here instead of stdout")

	rootCmd.AddCommand(runCmd)
}

// withEnv fills the options the user did not set on the command line from
// the environment.
func (o runOptions) withEnv(env config.Env, cmd *cobra.Command) runOptions {
	flags := cmd.Flags()

	if !flags.Changed("duration") && env.Duration > 0 {
		o.duration = env.Duration
	}

	if !flags.Changed("trace") && env.TraceDB != "" {
		o.traceDB = env.TraceDB
	}

	if !flags.Changed("clickhouse") && env.ClickHouseDSN != "" {
		o.clickHouse = env.ClickHouseDSN
	}

	if !flags.Changed("mysql") && env.MySQLDSN != "" {
		o.mySQL = env.MySQLDSN
	}

	if !flags.Changed("mongodb") && env.MongoDBURI != "" {
		o.mongoDB = env.MongoDBURI
	}

	if !flags.Changed("port") && env.MonitorPort > 0 {
		o.port = env.MonitorPort
		o.monitor = true
	}

	return o
}

// loadPage returns the page settings and where the markup is. A markup
// given on the command line is relative to the working directory, one from
// the page file is relative to the page file.
func loadPage(o runOptions, env config.Env) (*config.Page, string, error) {
	p := config.DefaultPage()

	if o.pageFile != "" {
		var err error

		p, err = config.LoadPage(o.pageFile)
		if err != nil {
			return nil, "", err
		}
	}

	env.Apply(p)

	markup := o.markup
	if markup == "" {
		markup = p.MarkupPath()
	}

	if markup == "" {
		return nil, "", fmt.Errorf("%w: no page markup given", config.ErrInvalidConfig)
	}

	return p, markup, nil
}

type recording struct {
	recorder datarecording.DataRecorder
	session  *datarecording.SessionRecorder
	tracer   *tracing.DBTracer
}

func openRecorder(o runOptions) (datarecording.DataRecorder, error) {
	if o.clickHouse != "" {
		return datarecording.NewClickHouse(o.clickHouse)
	}

	if o.mySQL != "" {
		return datarecording.NewMySQL(o.mySQL)
	}

	return datarecording.New(o.traceDB)
}

func startRecording(o runOptions, s *session.Session) (*recording, error) {
	recorder, err := openRecorder(o)
	if err != nil {
		return nil, err
	}

	r := &recording{recorder: recorder}

	r.session, err = datarecording.NewSessionRecorder(recorder)
	if err != nil {
		return nil, err
	}

	r.tracer, err = tracing.NewDBTracer(recorder, nil)
	if err != nil {
		return nil, err
	}

	for _, c := range s.Components() {
		tracing.CollectTransitions(c, r.tracer)
	}

	r.session.Start()

	return r, nil
}

func (r *recording) finish(events *tracing.EventCounter) error {
	if err := r.tracer.Err(); err != nil {
		return err
	}

	if err := events.Record(r.recorder); err != nil {
		return err
	}

	if err := r.session.End(); err != nil {
		return err
	}

	return r.recorder.Close()
}

func runPage(o runOptions, env config.Env, out io.Writer) error {
	p, markupPath, err := loadPage(o, env)
	if err != nil {
		return err
	}

	markup, err := os.Open(markupPath)
	if err != nil {
		return fmt.Errorf("pagesim: %w", err)
	}
	defer markup.Close()

	var logger *log.Logger
	if o.verbose || o.logEvents {
		logger = log.New(os.Stderr, "", 0)
	}

	b := session.MakeBuilder().WithPage(p)
	if o.verbose {
		b = b.WithLogger(logger)
	}

	s, err := b.Build(markup)
	if err != nil {
		return err
	}

	end := timing.VTimeInSec(defaultDuration.Seconds())

	if o.scriptFile != "" {
		script, err := config.LoadScript(o.scriptFile)
		if err != nil {
			return err
		}

		s.Play(script.Inputs())
		end = script.End() + 1
	}

	if o.duration > 0 {
		end = o.duration.Seconds()
	}

	events := tracing.NewEventCounter()
	s.Engine.AcceptHook(events)

	if o.logEvents {
		s.Engine.AcceptHook(timing.NewEventLogger(logger))
	}

	var rec *recording
	if o.traceDB != "" || o.clickHouse != "" || o.mySQL != "" {
		rec, err = startRecording(o, s)
		if err != nil {
			return err
		}

		rec.session.Set("Page", markupPath)
		rec.session.Set("Duration", strconv.FormatFloat(end, 'f', -1, 64))
	}

	var mongo *tracing.MongoDBTracer
	if o.mongoDB != "" {
		mongo, err = startMongoDB(o, s, logger)
		if err != nil {
			return err
		}
	}

	var monitor *monitoring.Monitor
	if o.monitor {
		monitor, err = startMonitor(o, s, events)
		if err != nil {
			return err
		}
	}

	if err := drive(s, end, monitor); err != nil {
		return err
	}

	if rec != nil {
		if err := rec.finish(events); err != nil {
			return err
		}
	}

	if mongo != nil {
		if err := mongo.Close(); err != nil {
			return err
		}
	}

	if monitor != nil {
		if err := stopMonitor(o, monitor); err != nil {
			return err
		}
	}

	return writeSnapshot(o.output, s.Snapshot(), out)
}

func startMongoDB(
	o runOptions,
	s *session.Session,
	logger *log.Logger,
) (*tracing.MongoDBTracer, error) {
	t, err := tracing.NewMongoDBTracer(o.mongoDB, nil)
	if err != nil {
		return nil, err
	}

	for _, c := range s.Components() {
		tracing.CollectTransitions(c, t)
	}

	if logger != nil {
		logger.Printf("transitions go to MongoDB database %s", t.Database())
	}

	return t, nil
}

func startMonitor(
	o runOptions,
	s *session.Session,
	events *tracing.EventCounter,
) (*monitoring.Monitor, error) {
	m := monitoring.NewMonitor().WithPortNumber(o.port)
	m.RegisterEngine(s.Engine)
	m.RegisterEventCounter(events)

	for _, c := range s.Components() {
		m.RegisterComponent(c)
	}

	addr, err := m.StartServer()
	if err != nil {
		return nil, err
	}

	url := "http://" + addr + "/api/progress"
	fmt.Fprintf(os.Stderr, "Monitoring page session at %s\n", url)

	if o.open {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	return m, nil
}

func stopMonitor(o runOptions, m *monitoring.Monitor) error {
	if o.hold {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		fmt.Fprintln(os.Stderr, "Run finished, press Ctrl+C to stop the monitor.")
		<-ctx.Done()
		stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return m.Shutdown(ctx)
}

// drive runs the session to end in steps, so that a monitor can follow the
// progress and pause in between.
func drive(s *session.Session, end timing.VTimeInSec, m *monitoring.Monitor) error {
	var bar *monitoring.ProgressBar
	if m != nil {
		bar = m.CreateProgressBar("Run", uint64(end/runStep)+1)
	}

	for t := s.Engine.Now(); t < end; {
		t = min(t+runStep, end)

		if err := s.Run(t); err != nil {
			return err
		}

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}

	if bar != nil {
		m.CompleteProgressBar(bar)
	}

	return nil
}

func writeSnapshot(path string, snap session.Snapshot, out io.Writer) error {
	if path == "" {
		return snap.WriteYAML(out)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pagesim: %w", err)
	}

	if err := snap.WriteYAML(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
