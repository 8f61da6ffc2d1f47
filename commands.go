package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/bluesky"
	"github.com/CrestNiraj12/speakfeed/infra/clipboard"
	"github.com/CrestNiraj12/speakfeed/infra/config"
	"github.com/CrestNiraj12/speakfeed/infra/editor"
	"github.com/CrestNiraj12/speakfeed/infra/logger"
	"github.com/CrestNiraj12/speakfeed/infra/mastodon"
	"github.com/CrestNiraj12/speakfeed/infra/usercache"
	"github.com/CrestNiraj12/speakfeed/render"
	"github.com/CrestNiraj12/speakfeed/tui"
	"github.com/CrestNiraj12/speakfeed/tui/preview"
)

func runFields(opts cliOptions, stdout io.Writer) error {
	kind, err := domain.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	for _, f := range render.Fields(kind) {
		fmt.Fprintln(stdout, f)
	}
	return nil
}

func runCheck(opts cliOptions, cfg config.Config, stdout, stderr io.Writer) error {
	log := logger.New(stderr, cfg.LogLevel)

	problems := map[string][]render.Problem{}
	if opts.templateSet {
		kind, err := domain.ParseKind(opts.kind)
		if err != nil {
			return err
		}
		if ps := render.Check(kind, opts.template); len(ps) > 0 {
			problems["template"] = ps
		}
	} else {
		snap, err := config.LoadTemplates(cfg.TemplatesPath)
		if err != nil {
			return err
		}
		for slot, ps := range render.CheckSet(snap.Templates) {
			problems[slot.String()] = ps
		}
	}

	if len(problems) == 0 {
		fmt.Fprintln(stdout, "no problems")
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(problems)) {
		for _, p := range problems[name] {
			log.Warn("template problem", "slot", name, "offset", p.Offset, "field", p.Field, "reason", p.Reason)
		}
	}
	return exitError{code: 1}
}

// newDecoder picks the payload decoder for source. Both share users so
// names resolve across kinds within one run.
func newDecoder(source string, users *usercache.Cache) (app.Decoder, error) {
	switch source {
	case config.SourceMastodon:
		return mastodon.NewDecoder(users), nil
	case config.SourceBluesky:
		return bluesky.NewDecoder(users), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, source)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}

func decodeInput(opts cliOptions, cfg config.Config, stdin io.Reader) (domain.Kind, domain.Batch, error) {
	kind, err := domain.ParseKind(opts.kind)
	if err != nil {
		return kind, domain.Batch{}, err
	}
	data, err := readInput(opts.input, stdin)
	if err != nil {
		return kind, domain.Batch{}, err
	}
	dec, err := newDecoder(cfg.Source, usercache.New(usercache.DefaultSize))
	if err != nil {
		return kind, domain.Batch{}, err
	}
	batch, err := dec.Decode(kind, data)
	if err != nil {
		return kind, domain.Batch{}, fmt.Errorf("decoding %s payload: %w", cfg.Source, err)
	}
	return kind, batch, nil
}

// renderBatch renders every record of kind. Posts choose post, repost or
// quote per item unless a slot or template is forced.
func renderBatch(opts cliOptions, snap app.Snapshot, kind domain.Kind, b domain.Batch) ([]string, error) {
	f := snap.Format
	f.Now = time.Now()

	switch {
	case opts.templateSet:
		return render.Parse(opts.template).Lines(b, kind, f), nil
	case opts.slot != "":
		slot, err := render.ParseSlot(opts.slot)
		if err != nil {
			return nil, err
		}
		if slot.Kind() != kind {
			return nil, fmt.Errorf("slot %s renders %s records, not %s", slot, slot.Kind(), kind)
		}
		return render.Parse(snap.Templates.Get(slot)).Lines(b, kind, f), nil
	case kind == domain.KindPost:
		return snap.Templates.Timeline(b.Posts, f), nil
	}
	return render.Parse(snap.Templates.Get(render.DefaultSlot(kind))).Lines(b, kind, f), nil
}

func runRender(opts cliOptions, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logger.New(stderr, cfg.LogLevel)
	store, err := config.NewStore(cfg.TemplatesPath, log)
	if err != nil {
		return err
	}
	kind, batch, err := decodeInput(opts, cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug("decoded payload", "source", cfg.Source, "kind", kind.String(), "records", batch.Len(kind))

	lines, err := renderBatch(opts, store.Snapshot(), kind, batch)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		fmt.Fprintln(stdout, ln)
	}
	return nil
}

// runPreview runs the TUI. The terminal belongs to Bubble Tea, so the
// store logs nowhere; problems are shown in the preview instead.
func runPreview(opts cliOptions, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	store, err := config.NewStore(cfg.TemplatesPath, logger.Discard())
	if err != nil {
		return err
	}
	_, batch, err := decodeInput(opts, cfg, stdin)
	if err != nil {
		return err
	}

	root := tui.NewApp(tui.Deps{
		Templates: store,
		Clipboard: clipboard.New(),
		Editor:    editor.NewEnvEditor(),
		Batch:     batch,
	})
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.input == "" || opts.input == "-" {
		// stdin carried the payload; read keys from the terminal.
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(root, progOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := config.Watch(ctx, store, func(snap app.Snapshot, err error) {
		p.Send(preview.ReloadedMsg{Snapshot: snap, Err: err})
	}); err != nil {
		// Preview still works; only live reload is lost.
		logger.New(stderr, cfg.LogLevel).Warn("template watcher unavailable", "path", store.Path(), "err", err)
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	done := final.(tui.App)
	return printDrafts(stdout, done.Templates(), done.Drafts())
}

// printDrafts writes changed templates as YAML ready to paste into the
// templates file.
func printDrafts(w io.Writer, set render.Set, drafts map[render.Slot]string) error {
	if len(drafts) == 0 {
		return nil
	}
	slots := slices.Sorted(maps.Keys(drafts))
	data, err := config.MarshalTemplates(set, slots)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "# Changed templates:")
	_, err = w.Write(data)
	return err
}
