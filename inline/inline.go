// Package inline implements the non-interactive mode: open a page, print it, exit.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/page"
	"github.com/samber/lo"
)

// Run opens the page described by options and writes it to options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Navigator == nil {
		return errors.New("no navigator")
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}

	p, err := open(ctx, options)
	if err != nil {
		return err
	}

	grow(p, options.Batches)
	if p.Paginator != nil && p.Paginator.Err() != nil {
		return p.Paginator.Err()
	}

	items := p.Items
	if filter, ok := options.ItemsFilter.Get(); ok {
		if items, err = filter(items); err != nil {
			return err
		}
	}

	output := &Output{
		Token:  options.Token,
		Query:  options.Query,
		Type:   p.Type,
		Title:  p.Title,
		More:   p.More(),
		Video:  p.Video,
		Reason: p.Reason,
		Items: lo.Map(items, func(item *page.Item, _ int) *Entry {
			return &Entry{Item: item}
		}),
	}

	if options.Videos {
		resolve(ctx, options.Navigator, output.Items)
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	return writePlain(options, output)
}

func open(ctx context.Context, options *Options) (*page.Page, error) {
	if options.Token != "" {
		return options.Navigator.Open(ctx, options.Token)
	}

	if options.Query == "" {
		return nil, errors.New("either a token or a query is required")
	}

	return options.Navigator.SearchPage(ctx, options.Query)
}

func grow(p *page.Page, batches int) {
	for i := 0; (batches < 0 || i < batches) && p.More(); i++ {
		p.Advance()
	}
}

func resolve(ctx context.Context, navigator Navigator, entries []*Entry) {
	for _, entry := range entries {
		if entry.Kind != page.KindVideo || entry.URI == "" {
			continue
		}

		p, err := navigator.Open(ctx, entry.URI)
		if err != nil {
			log.Warnf("failed to resolve %s: %s", entry.Title, err)
			entry.Reason = err.Error()
			continue
		}

		entry.Video = p.Video
		entry.Reason = p.Reason
	}
}

func writePlain(options *Options, output *Output) error {
	out := options.Out

	if output.Type != page.Directory {
		if output.Video == nil {
			_, err := fmt.Fprintln(out, output.Reason)
			return err
		}

		for _, src := range output.Video.Sources {
			if _, err := fmt.Fprintln(out, src); err != nil {
				return err
			}
		}
		return nil
	}

	for _, entry := range output.Items {
		var err error
		switch {
		case entry.Kind == page.KindSeparator:
			_, err = fmt.Fprintf(out, "# %s\n", entry.Title)
		case options.Videos && entry.Video != nil:
			_, err = fmt.Fprintln(out, entry.Video.Preferred())
		default:
			_, err = fmt.Fprintf(out, "%s\t%s\n", entry.URI, entry.Title)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
