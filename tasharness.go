// This file is part of TASHarness.
//
// TASHarness is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TASHarness is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TASHarness.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/tasharness/bindings"
	"github.com/jetsetilly/tasharness/checkpoint"
	"github.com/jetsetilly/tasharness/demo"
	"github.com/jetsetilly/tasharness/host"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/modalflag"
	"github.com/jetsetilly/tasharness/notifications"
	"github.com/jetsetilly/tasharness/paths"
	"github.com/jetsetilly/tasharness/prefs"
	"github.com/jetsetilly/tasharness/random"
	"github.com/jetsetilly/tasharness/regression"
	"github.com/jetsetilly/tasharness/runfile"
	"github.com/jetsetilly/tasharness/sdlhost"
	"github.com/jetsetilly/tasharness/statsview"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/terminal"
	"github.com/jetsetilly/tasharness/userinput"
	"github.com/jetsetilly/tasharness/version"
)

const (
	defaultPrefsFile      = "tas.prefs"
	defaultRegressionFile = "regression.db"
)

// the demo canvas has a border around the play area and a status line below
const (
	canvasWidth  = demo.Width + 2
	canvasHeight = demo.Height + 3
)

// SDL must be serviced from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode requested by the arguments. returns the exit value of the
// program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	defPrefs, err := paths.ResourcePath("", defaultPrefsFile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	prefsFile := md.AddString("prefsfile", defPrefs, "preferences file")
	prefsOverride := md.AddString("prefs", "", "preference overrides (eg. \"tas.maxTimeScale::5; tas.startPaused::false\")")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.URL("")))
	md.AddSubModes("PLAY", "VERIFY", "REGRESS", "INSPECT", "VERSION")
	md.DescribeSubMode("PLAY", "record and replay the demo subject")
	md.DescribeSubMode("VERIFY", "replay a run file headless and check its digest")
	md.DescribeSubMode("REGRESS", "manage the regression database")
	md.DescribeSubMode("INSPECT", "summarise a run file or checkpoint file")
	md.DescribeSubMode("VERSION", "print the version of the program")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}

	if *stats {
		stop := statsview.Launch(output, "")
		defer stop()
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, output, *prefsFile)
	case "VERIFY":
		err = verify(md, output)
	case "REGRESS":
		err = regress(md, output)
	case "INSPECT":
		err = inspect(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

// demoFactory creates the demo subject for headless replay. The seed does not
// matter because the subject is always loaded with the initial state of the
// run.
func demoFactory(keyboard *tas.Headless) tas.Subject[demo.State] {
	return demo.NewMover(keyboard, 0)
}

// playHost is the part of the terminal and SDL hosts that the play mode needs
type playHost interface {
	host.Source
	tas.Transport
	demo.Keyboard
}

func play(md *modalflag.Modes, output io.Writer, prefsFile string) error {
	md.NewMode()

	useSDL := md.AddBool("sdl", false, "use an SDL window instead of the terminal")
	replayFile := md.AddString("replay", "", "run file to replay on startup")
	seed := md.AddInt64("seed", 0, "seed for the demo subject (0 for random)")
	rate := md.AddFloat64("rate", float64(host.DefaultRate), "frames per second")
	hold := md.AddInt("hold", terminal.DefaultHoldFrames, "frames a terminal key is held after it was pressed")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	md.AdditionalHelp(
		`Hold the modifier key (LAlt by default) to enter capture mode. In capture mode the
bound keys perform harness commands. In the terminal, Alt+key presses the modifier
key from the preferences and the key together. The bindings are:

` + bindings.Default().String())

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}

	tasPrefs, err := tas.NewPreferences(prefsFile)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = random.NewSeed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var hst playHost
	var surface tas.Surface
	var setStatus func(func() string)

	if *useSDL {
		h, err := sdlhost.NewHost("TASHarness", canvasWidth*sdlhost.CellSize, canvasHeight*sdlhost.CellSize)
		if err != nil {
			return err
		}
		defer h.Destroy()

		cnv, err := sdlhost.NewCanvas(h.Window(), canvasWidth, canvasHeight)
		if err != nil {
			return err
		}
		defer cnv.Destroy()

		hst = h
		surface = cnv
		setStatus = func(f func() string) { cnv.Status = f }
	} else {
		term, err := terminal.Open(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer term.Close()

		cnv := terminal.NewCanvas(os.Stdout, canvasWidth, canvasHeight)
		hst = terminal.NewHost(os.Stdin, *hold, userinput.NormaliseKey(tasPrefs.Modifier.String()))
		surface = cnv
		setStatus = func(f func() string) { cnv.Status = f }
	}

	ctrl, err := tas.NewController[demo.State](demo.NewMover(hst, *seed), hst, tasPrefs, logger.Allow)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctrl.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice) error {
		logger.Log(logger.Allow, "notice", notice)
		return nil
	}))

	setStatus(func() string {
		s := strings.Builder{}
		s.WriteString(ctrl.Status())
		if ctrl.Capture() {
			s.WriteString(" [capture]")
		}
		s.WriteString(fmt.Sprintf(" x%.2f", ctrl.TimeScale()))
		return s.String()
	})

	if *replayFile != "" {
		if err := ctrl.StartReplay(*replayFile); err != nil {
			return err
		}
	}

	lmtr := host.NewLimiter(float32(*rate))
	defer lmtr.Stop()

	err = host.Loop(ctx, ctrl, hst, surface, lmtr)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return tasPrefs.Save()
}

func verify(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one run file required for %s mode", md)
	}

	run, err := runfile.Load[demo.State](md.GetArg(0))
	if err != nil {
		return err
	}

	res, err := regression.Verify(run, demoFactory)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "frames: %d\n", res.Frames)
	fmt.Fprintf(output, "digest: %s\n", res.Digest)
	fmt.Fprintf(output, "trace: %s\n", res.Trace)

	if !res.Inputs {
		return fmt.Errorf("inputs recorded during replay do not match the run")
	}

	if run.Digest == "" {
		fmt.Fprintln(output, "run has no digest to compare with")
		return nil
	}

	if !res.Match(run.Digest) {
		return fmt.Errorf("digest does not match run digest %s", run.Digest)
	}

	fmt.Fprintln(output, "digest matches")

	return nil
}

func regress(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	defDB, err := paths.ResourcePath("", defaultRegressionFile)
	if err != nil {
		return err
	}

	dbFile := md.AddString("db", defDB, "regression database")
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")
	md.DescribeSubMode("RUN", "replay entries in the database")
	md.DescribeSubMode("LIST", "list entries in the database")
	md.DescribeSubMode("DELETE", "delete an entry from the database")
	md.DescribeSubMode("ADD", "add a run file to the database")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("v", false, "output more detail")
		failOnError := md.AddBool("fail", false, "fail on error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		ok, err := regression.RegressRun(output, *dbFile, demoFactory, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("regression tests failed")
		}

	case "LIST":
		md.NewMode()
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(output, *dbFile)

	case "DELETE":
		md.NewMode()
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			return regression.RegressDelete(output, os.Stdin, *dbFile, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md, output, *dbFile)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, output io.Writer, dbFile string) error {
	md.NewMode()

	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(
		`The run file is replayed and the result is stored with the run. If the run file
includes a digest then the replay must produce the same digest.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("run file required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}

		reg := regression.NewRunRegression(md.GetArg(0), data, *notes)
		if err := regression.RegressAdd(output, dbFile, reg, demoFactory); err != nil {
			return fmt.Errorf("error adding regression test: %w", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

func inspect(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	viz := md.AddString("memviz", "", "write a graphviz dot file of the loaded data")
	showBindings := md.AddString("bindings", "", "show the capture bindings in the YAML file (empty for defaults)")

	md.AdditionalHelp(
		`The file can be a run file or a checkpoint file. Checkpoint files with a .db
extension are opened as SQLite databases.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var showDefaults bool
	md.Visit(func(flag string) {
		if flag == "bindings" {
			showDefaults = true
		}
	})

	if showDefaults {
		b, err := bindings.Load(*showBindings, *showBindings == "")
		if err != nil {
			return err
		}
		if err := b.Encode(output); err != nil {
			return err
		}
		if len(md.RemainingArgs()) == 0 {
			return nil
		}
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one file required for %s mode", md)
	}
	path := md.GetArg(0)

	var loaded any

	run, err := runfile.Load[demo.State](path)
	if err == nil {
		runfile.Summary(output, run)
		loaded = &run
	} else {
		list, cerr := loadCheckpoints(path)
		if cerr != nil {
			return fmt.Errorf("%s is not a run file (%v) or a checkpoint file (%v)", path, err, cerr)
		}

		fmt.Fprintf(output, "checkpoints: %d\n", len(list))
		for i, cp := range list {
			fmt.Fprintf(output, "%03d %s %s\n", i, cp, cp.State)
		}
		loaded = &list
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, loaded)
	}

	return nil
}

func loadCheckpoints(path string) ([]checkpoint.Checkpoint[demo.State], error) {
	if filepath.Ext(path) == ".db" {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		db, err := checkpoint.NewSQLite[demo.State](path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Load()
	}
	return checkpoint.JSONFile[demo.State]{Path: path}.Load()
}
