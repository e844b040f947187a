// Command attachgtk is a small GTK4 host showing attached properties and
// DataContext inheritance over real widgets.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
	"github.com/bnema/attachprop/pkg/backend/gtkbackend"
)

const appID = "io.github.bnema.attachgtk"

var themeKey = attached.NewInheritedKey[string]("Theme")

// shelf is the view model bound to the window.
type shelf struct {
	attached.Observable

	Title string
	Books []string
}

func (s *shelf) add(book string) {
	s.Books = append(s.Books, book)
	s.NotifyPropertyChanged(s, "Books")
}

func main() {
	logger := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithBackend(ctx, "gtk")

	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)
	h := gtkbackend.Install(ctx, app)

	app.ConnectActivate(func() {
		if err := activate(ctx, app, h); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to build window")
			app.Quit()
		}
	})

	os.Exit(app.Run(os.Args))
}

func activate(ctx context.Context, app *gtk.Application, h *gtkbackend.Hierarchy) error {
	log := logging.FromContext(ctx)
	props := attached.Default()

	if err := themeKey.Set(props, app, "Dark"); err != nil {
		return err
	}

	win := gtk.NewApplicationWindow(app)
	win.SetTitle("attachgtk")
	win.SetDefaultSize(420, 240)

	root := gtk.NewBox(gtk.OrientationVertical, 6)
	sidebar := gtk.NewBox(gtk.OrientationVertical, 4)
	status := gtk.NewLabel("")
	books := gtk.NewLabel("")
	add := gtk.NewButtonWithLabel("Add book")

	sidebar.Append(books)
	sidebar.Append(add)
	root.Append(sidebar)
	root.Append(status)
	win.SetChild(root)

	if err := themeKey.Set(props, sidebar, "Light"); err != nil {
		return err
	}

	model := &shelf{Title: "Library"}
	sub, err := attached.SetDataContextWithPropertyChangedHandler(win, model, func(_ any, property string) {
		log.Debug().Str("property", property).Msg("view model changed")
		refresh(books, status)
	})
	if err != nil {
		return err
	}
	win.ConnectDestroy(sub.Unsubscribe)

	add.ConnectClicked(func() {
		// Reads go through the button so the DataContext is inherited.
		if m, ok := attached.GetDataContext(add).(*shelf); ok {
			m.add(fmt.Sprintf("Book %d", len(m.Books)+1))
		}
	})

	refresh(books, status)
	win.SetVisible(true)

	log.Info().Int("anchors", h.Anchors()).Msg("window ready")
	return nil
}

// refresh renders the inherited values seen by each label.
func refresh(books, status *gtk.Label) {
	props := attached.Default()

	m, _ := attached.GetDataContext(books).(*shelf)
	if m != nil {
		books.SetText(fmt.Sprintf("%s: %d books", m.Title, len(m.Books)))
	}

	booksTheme := themeKey.GetOr(props, books, "unset")
	statusTheme := themeKey.GetOr(props, status, "unset")
	status.SetText(fmt.Sprintf("sidebar theme %s, window theme %s", booksTheme, statusTheme))
}
