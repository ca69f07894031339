// biodiff renders a binary-alignment, side-by-side hex diff of two
// files in the terminal, streaming the alignment incrementally as it
// is computed so large files open without an up-front blocking pass.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/align"
	"github.com/grailbio/biodiff/internal/aligner"
	"github.com/grailbio/biodiff/internal/cache"
	"github.com/grailbio/biodiff/internal/controller"
	"github.com/grailbio/biodiff/internal/fileio"
	"github.com/grailbio/biodiff/internal/query"
	"github.com/grailbio/biodiff/internal/search"
	"github.com/grailbio/biodiff/internal/term"
)

var (
	leftPath    = flag.String("left", "", "first file to compare")
	rightPath   = flag.String("right", "", "second file to compare")
	cols        = flag.Int("cols", 16, "initial number of byte columns")
	algo        = flag.String("algo", "wfa", "alignment algorithm identifier, used as part of the cache key")
	cacheSize   = flag.Int("cache", 16, "number of alignment streams to keep in the in-memory cache")
	chunkBytes  = flag.Int("chunk-bytes", aligner.DefaultChunkBytes, "bytes aligned per wavefront alignment call")
	rightToLeft = flag.Bool("rtl", false, "lay out the two panes right-to-left")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *leftPath == "" || *rightPath == "" {
		fmt.Fprintln(os.Stderr, "usage: biodiff -left <file> -right <file>")
		os.Exit(2)
	}

	ctx := vcontext.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "biodiff: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	leftBytes, err := fileio.Load(ctx, *leftPath)
	if err != nil {
		return err
	}
	rightBytes, err := fileio.Load(ctx, *rightPath)
	if err != nil {
		return err
	}

	rows := 24
	view := align.New(
		align.FileState{Name: *leftPath, Content: leftBytes},
		align.FileState{Name: *rightPath, Content: rightBytes},
		*cols, rows, *rightToLeft,
	)

	backend := term.NewBubbleBackend(*cols*6, rows)
	wfaAligner := aligner.NewWFAAligner(*chunkBytes)
	lru := cache.New(*cacheSize)
	ctl := controller.New(view, backend, wfaAligner, lru, *algo)

	model := term.NewModel(backend, func(a action.Action) {
		ctl.Send(controller.Message{Kind: controller.UserAction, Action: a})
	}, func(w, h int) {
		backend.Resize(w, h)
	}, func(text string, kind query.Kind) {
		q, err := search.NewQuery(text, kind)
		if err != nil {
			log.Error.Printf("biodiff: search query %q: %v", text, err)
			return
		}
		ctl.StartSearch(q)
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	backend.AttachProgram(program)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctl.Start(runCtx)
	go func() {
		if err := ctl.Run(); err != nil {
			log.Error.Printf("biodiff: controller stopped: %v", err)
			program.Quit()
		}
	}()
	defer ctl.Stop()

	_, err = program.Run()
	return err
}
