package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//go:embed pages/*.html
var pageFS embed.FS

// Section is one dashboard navigation entry.
type Section struct {
	Path     string
	Title    string
	Resource string // API collection listed on the page.
}

// Sections lists the dashboard pages in navigation order.
//
//nolint:gochecknoglobals
var Sections = []Section{
	{Path: "/", Title: "Dashboard", Resource: "users/stats"},
	{Path: "/users", Title: "Users", Resource: "users"},
	{Path: "/orders", Title: "Orders", Resource: "orders"},
	{Path: "/products", Title: "Products", Resource: "products"},
	{Path: "/announcements", Title: "Announcements", Resource: "announcements"},
	{Path: "/activities", Title: "Activities", Resource: "activities"},
	{Path: "/housekeeping", Title: "Housekeeping", Resource: "housekeeping"},
	{Path: "/requests", Title: "Requests", Resource: "requests"},
	{Path: "/reports", Title: "Reports", Resource: "reports"},
	{Path: "/rooms", Title: "Rooms", Resource: "rooms"},
}

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Logger *slog.Logger
}

// PageHandler renders the login page and the dashboard shell.
type PageHandler struct {
	login     *template.Template
	dashboard *template.Template
	logger    *slog.Logger
}

type pageData struct {
	Title    string
	Active   string
	Resource string
	Sections []Section
}

// NewPageHandler parses the embedded page templates.
func NewPageHandler(params PageHandlerParams) (*PageHandler, error) {
	login, err := template.ParseFS(pageFS, "pages/layout.html", "pages/login.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse login page")
	}

	dashboard, err := template.ParseFS(pageFS, "pages/layout.html", "pages/dashboard.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse dashboard page")
	}

	return &PageHandler{
		login:     login,
		dashboard: dashboard,
		logger:    params.Logger,
	}, nil
}

// Login renders the admin sign-in form.
func (h *PageHandler) Login(c echo.Context) error {
	return h.render(c, h.login, "login.html", pageData{Title: "Sign in"})
}

// Dashboard renders the shell for / and each section path.
func (h *PageHandler) Dashboard(c echo.Context) error {
	path := "/" + c.Param("section")

	for _, section := range Sections {
		if section.Path != path {
			continue
		}

		return h.render(c, h.dashboard, "dashboard.html", pageData{
			Title:    section.Title,
			Active:   section.Path,
			Resource: section.Resource,
			Sections: Sections,
		})
	}

	return echo.NewHTTPError(http.StatusNotFound)
}

func (h *PageHandler) render(c echo.Context, tmpl *template.Template, name string, data pageData) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render page",
			slog.String("page", name),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
