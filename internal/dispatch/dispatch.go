// Package dispatch executes parsed commands against the record store. Both
// front ends (the live loop and the line REPL) share it.
package dispatch

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/VoxDroid/rolo/internal/command"
	"github.com/VoxDroid/rolo/internal/record"
)

// HelpText describes the command surface.
const HelpText = `USAGE:
/list                          List all records
/add "name" "phone" [company]  Add a record; use - as name for a company-only entry
/delete "foo"                  Delete all records matching "foo"
/help                          This help screen
/quit                          Quit the program
foo                            Search for all records matching "foo"`

const (
	usageAdd    = `usage: /add "name" "phone" [company]`
	usageDelete = `usage: /delete "query"`
)

// CompanyOnly is the name placeholder that makes /add store a company entry.
const CompanyOnly = "-"

// Store is the persistence the dispatcher needs; *registry.Repository
// satisfies it.
type Store interface {
	List(ctx context.Context) ([]record.Record, error)
	Add(ctx context.Context, ident record.Ident, phone string) (record.Record, error)
	DeleteMatching(ctx context.Context, query string) ([]record.Record, error)
}

// Outcome is what a command produced. Records is set for commands that
// return a listing; for /delete it holds the removed records.
type Outcome struct {
	Kind    command.Kind
	Message string
	Records []record.Record
	Quit    bool
}

// Summary condenses the outcome to a single status line.
func (o Outcome) Summary() string {
	switch o.Kind {
	case command.Search, command.List:
		return fmt.Sprintf("%s %d %s", o.Message, len(o.Records), plural(len(o.Records)))
	}
	return o.Message
}

func plural(n int) string {
	if n == 1 {
		return "record"
	}
	return "records"
}

// Dispatcher runs commands.
type Dispatcher struct {
	store Store
	log   logr.Logger
}

// New returns a Dispatcher backed by store.
func New(store Store, log logr.Logger) *Dispatcher {
	return &Dispatcher{store: store, log: log}
}

// Execute runs cmd. Usage mistakes are reported in Outcome.Message; store
// failures and invalid field values are returned as errors.
func (d *Dispatcher) Execute(ctx context.Context, cmd command.Command) (Outcome, error) {
	d.log.V(1).Info("dispatch", "command", cmd.String())
	out := Outcome{Kind: cmd.Kind}
	switch cmd.Kind {
	case command.Quit:
		out.Quit = true
		out.Message = "bye"
	case command.Help:
		out.Message = HelpText
	case command.List:
		recs, err := d.store.List(ctx)
		if err != nil {
			return Outcome{}, err
		}
		out.Message = "All Records:"
		out.Records = recs
	case command.Search:
		recs, err := d.store.List(ctx)
		if err != nil {
			return Outcome{}, err
		}
		out.Message = "Search Results:"
		out.Records = record.Filter(recs, cmd.Query())
	case command.Add:
		return d.add(ctx, cmd)
	case command.Delete:
		return d.delete(ctx, cmd)
	default:
		return Outcome{}, fmt.Errorf("unhandled command %q", cmd.Word)
	}
	return out, nil
}

func (d *Dispatcher) add(ctx context.Context, cmd command.Command) (Outcome, error) {
	out := Outcome{Kind: command.Add}
	if len(cmd.Args) < 2 || len(cmd.Args) > 3 {
		out.Message = usageAdd
		return out, nil
	}
	name, phone, company := cmd.Args[0], cmd.Args[1], ""
	if len(cmd.Args) == 3 {
		company = cmd.Args[2]
	}
	if name == CompanyOnly {
		name = ""
		if company == "" {
			out.Message = usageAdd
			return out, nil
		}
	}
	ident := record.NewIdent(name, company)
	if ident == nil {
		out.Message = usageAdd
		return out, nil
	}
	rec, err := d.store.Add(ctx, ident, phone)
	if err != nil {
		return Outcome{}, err
	}
	d.log.Info("record added", "id", rec.ID)
	out.Message = "Added " + rec.String()
	out.Records = []record.Record{rec}
	return out, nil
}

func (d *Dispatcher) delete(ctx context.Context, cmd command.Command) (Outcome, error) {
	out := Outcome{Kind: command.Delete}
	q := cmd.Query()
	if q == "" {
		out.Message = usageDelete
		return out, nil
	}
	gone, err := d.store.DeleteMatching(ctx, q)
	if err != nil {
		return Outcome{}, err
	}
	d.log.Info("records deleted", "query", q, "count", len(gone))
	out.Message = fmt.Sprintf("Deleted %d %s", len(gone), plural(len(gone)))
	out.Records = gone
	return out, nil
}
