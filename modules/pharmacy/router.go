package pharmacy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pharmagarde/pharmagarde/handler"
	"github.com/pharmagarde/pharmagarde/modules/account"
	"github.com/pharmagarde/pharmagarde/pkg/binder"
	"github.com/pharmagarde/pharmagarde/pkg/cities"
	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

const msgInvalidFilter = "Filtre invalide"

// Router mounts the public, pharmacist and admin endpoints. Pharmacist and
// admin endpoints authenticate with HTTP Basic credentials against auth.
func Router(svc *Service, auth account.Provider, opts ...handler.Option) chi.Router {
	h := &routes{svc: svc}
	wrap := func(fn handler.Func) http.HandlerFunc { return handler.Wrap(fn, opts...) }

	r := chi.NewRouter()
	r.Post("/register", wrap(h.register))
	r.Get("/pharmacies", wrap(h.search))
	r.Get("/cities", wrap(h.cities))

	r.Group(func(r chi.Router) {
		r.Use(account.Authenticate(auth, opts...))
		r.Use(account.RequireRole([]account.Role{account.RolePharmacist}, opts...))
		r.Get("/me/pharmacy", wrap(h.mine))
		r.Put("/me/pharmacy", wrap(h.updateMine))
		r.Post("/me/pharmacy/toggle", wrap(h.toggleMine))
	})

	r.Group(func(r chi.Router) {
		r.Use(account.Authenticate(auth, opts...))
		r.Use(account.RequireRole([]account.Role{account.RoleAdmin}, opts...))
		r.Get("/admin/pharmacies", wrap(h.list))
		r.Get("/admin/stats", wrap(h.stats))
		r.Post("/admin/pharmacies/{id}/verify", wrap(h.toggleVerified))
		r.Post("/admin/pharmacies/{id}/toggle", wrap(h.toggleStatus))
	})

	return r
}

type routes struct {
	svc *Service
}

func (h *routes) register(r *http.Request) handler.Response {
	var in RegisterInput
	if err := binder.JSON(r, &in); err != nil {
		return handler.Error(err)
	}
	p, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Created(p)
}

func (h *routes) search(r *http.Request) handler.Response {
	q := r.URL.Query()
	list, err := h.svc.Search(r.Context(), Query{City: q.Get("city"), Term: q.Get("q")})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(list)
}

func (h *routes) cities(*http.Request) handler.Response {
	return handler.JSON(cities.List())
}

func (h *routes) mine(r *http.Request) handler.Response {
	user, ok := account.UserFromContext(r.Context())
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	p, err := h.svc.Mine(r.Context(), user.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (h *routes) updateMine(r *http.Request) handler.Response {
	user, ok := account.UserFromContext(r.Context())
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	var info Info
	if err := binder.JSON(r, &info); err != nil {
		return handler.Error(err)
	}
	p, err := h.svc.UpdateInfo(r.Context(), user.ID, info)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (h *routes) toggleMine(r *http.Request) handler.Response {
	user, ok := account.UserFromContext(r.Context())
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	p, err := h.svc.ToggleStatus(r.Context(), user.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (h *routes) list(r *http.Request) handler.Response {
	f, ok := ParseFilter(r.URL.Query().Get("filter"))
	if !ok {
		return handler.Error(validator.ValidationErrors{{Field: "filter", Message: msgInvalidFilter}})
	}
	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(list)
}

func (h *routes) stats(r *http.Request) handler.Response {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(st)
}

func (h *routes) toggleVerified(r *http.Request) handler.Response {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}
	p, err := h.svc.ToggleVerified(r.Context(), id)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}

func (h *routes) toggleStatus(r *http.Request) handler.Response {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}
	p, err := h.svc.ToggleStatusByAdmin(r.Context(), id)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}
