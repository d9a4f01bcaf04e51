package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent"
	"github.com/dmitrymomot/fluent/example/requests"
	"github.com/dmitrymomot/fluent/example/views"
	"github.com/dmitrymomot/fluent/pkg/logger"
	"github.com/dmitrymomot/fluent/pkg/modelstate"
	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

var topics = []views.Topic{
	{ID: 1, Name: "Pricing", Group: "Sales"},
	{ID: 2, Name: "Demo", Group: "Sales"},
	{ID: 3, Name: "Bug report", Group: "Support"},
	{ID: 4, Name: "Other"},
}

func main() {
	log := logger.New(logger.WithLevel(slog.LevelDebug), logger.WithExtractors(logger.ControlExtractor()))

	routes := urlgen.New()
	h := &contactHandler{log: log, routes: routes}
	must(routes.HandleFunc("contact.new", http.MethodGet, "/contact", h.show))
	must(routes.HandleFunc("contact.create", http.MethodPost, "/contact", h.create))
	must(routes.HandleFunc("contact.thanks", http.MethodGet, "/contact/thanks", h.thanks))

	if err := run(log, getEnv("ADDRESS", ":8080"), routes); err != nil {
		log.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

type contactHandler struct {
	log    *slog.Logger
	routes *urlgen.Routes
}

func (c *contactHandler) helper(model any, state *modelstate.State) *fluent.Helper {
	return fluent.New(
		fluent.WithModel(model),
		fluent.WithModelState(state),
		fluent.WithRoutes(c.routes),
		fluent.WithLogger(c.log),
		fluent.WithEnsureValidations(),
	)
}

func (c *contactHandler) show(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, views.ContactForm(c.helper(&requests.CreateContactRequest{}, nil), topics))
}

func (c *contactHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := requests.ParseContact(r.PostForm)
	if errs := req.Validate(); len(errs) > 0 {
		state := modelstate.FromForm(r.PostForm, errs)
		c.render(w, r, http.StatusUnprocessableEntity, views.ContactForm(c.helper(req, state), topics))
		return
	}

	c.log.InfoContext(r.Context(), "contact created", slog.String("email", req.Email))
	u, err := c.routes.URL(urlgen.Navigation{RouteName: "contact.thanks"})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, u, http.StatusSeeOther)
}

func (c *contactHandler) thanks(w http.ResponseWriter, r *http.Request) {
	h := c.helper(nil, nil)
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := h.Element("p").Markdown("**Thanks!** We will get back to you shortly.").Render(ctx, w); err != nil {
			return err
		}
		return h.Link("Send another").Route("contact.new", nil).Render(ctx, w)
	})
	c.render(w, r, http.StatusOK, content)
}

func (c *contactHandler) render(w http.ResponseWriter, r *http.Request, code int, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := views.Page("Contact us", content).Render(r.Context(), w); err != nil {
		c.log.ErrorContext(r.Context(), "render page", slog.Any("error", err))
	}
}

// run serves handler until SIGINT or SIGTERM, then shuts down gracefully.
func run(log *slog.Logger, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
