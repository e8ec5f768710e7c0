package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Credentials accepted by the login form.
const (
	UserEmail    = "ichiro@example.com"
	UserPassword = "password"

	sessionCookie = "session"
)

// Zipcloud error messages.
const (
	ZipMissingMessage = "必須パラメータが指定されていません。"
	ZipLengthMessage  = "パラメータ「郵便番号」の桁数が不正です。"
	ZipDigitsMessage  = "パラメータ「郵便番号」に数字以外の文字が指定されています。"
)

type address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Address3 string `json:"address3"`
	Kana1    string `json:"kana1"`
	Kana2    string `json:"kana2"`
	Kana3    string `json:"kana3"`
	PrefCode string `json:"prefcode"`
	Zipcode  string `json:"zipcode"`
}

var addresses = map[string]address{
	"1000001": {"東京都", "千代田区", "千代田", "ﾄｳｷｮｳﾄ", "ﾁﾖﾀﾞｸ", "ﾁﾖﾀﾞ", "13", "1000001"},
	"5300001": {"大阪府", "大阪市北区", "梅田", "ｵｵｻｶﾌ", "ｵｵｻｶｼｷﾀｸ", "ｳﾒﾀﾞ", "27", "5300001"},
}

type post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

var posts = map[int]post{
	1: {
		UserID: 1,
		ID:     1,
		Title:  "sunt aut facere repellat provident occaecati excepturi optio reprehenderit",
		Body:   "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum",
	},
}

type handler struct {
	log logrus.FieldLogger
}

// NewHandler returns the fixture site's routes.
func NewHandler(log logrus.FieldLogger) http.Handler {
	h := &handler{log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ja/", http.StatusFound)
	})
	r.Route("/ja", func(r chi.Router) {
		r.Get("/", h.page(homeTemplate, SiteTitle))
		r.Get("/index.html", h.page(homeTemplate, SiteTitle))
		r.Get("/login.html", h.page(loginTemplate, LoginTitle))
		r.Post("/login", h.handleLogin)
		r.Get("/mypage.html", h.handleMyPage)
		r.Get("/plans.html", h.page(plansTemplate, PlansTitle))
	})

	r.Get("/posts/{id}", h.handlePost)
	r.Get("/api/search", h.handleZipSearch)

	return r
}

func (h *handler) page(tmpl *template.Template, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, tmpl, pageData{Title: title, User: currentUser(r)})
	}
}

func (h *handler) render(w http.ResponseWriter, tmpl *template.Template, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.log.WithError(err).WithField("title", data.Title).Error("failed to render page")
	}
}

func currentUser(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// handleLogin checks the form credentials. Success redirects to the member
// page with a session cookie; failure re-renders the form with an error.
func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	email := r.PostForm.Get("email")
	if email != UserEmail || r.PostForm.Get("password") != UserPassword {
		h.log.WithField("email", email).Info("login rejected")
		h.render(w, loginTemplate, pageData{
			Title: LoginTitle,
			Error: "メールアドレスまたはパスワードが違います。",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: email, Path: "/", HttpOnly: true})
	http.Redirect(w, r, "/ja/mypage.html", http.StatusSeeOther)
}

func (h *handler) handleMyPage(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == "" {
		http.Redirect(w, r, "/ja/login.html", http.StatusFound)
		return
	}
	h.render(w, myPageTemplate, pageData{Title: MyPageTitle, User: user})
}

func (h *handler) handlePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	p, ok := posts[id]
	if !ok {
		h.writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

type zipResponse struct {
	Message *string   `json:"message"`
	Results []address `json:"results"`
	Status  int       `json:"status"`
}

// handleZipSearch follows zipcloud: the HTTP status is always 200 and the
// envelope's status field reports validation errors.
func (h *handler) handleZipSearch(w http.ResponseWriter, r *http.Request) {
	zip := strings.ReplaceAll(r.URL.Query().Get("zipcode"), "-", "")

	if msg := validateZip(zip); msg != "" {
		h.writeJSON(w, http.StatusOK, zipResponse{Message: &msg, Status: http.StatusBadRequest})
		return
	}

	resp := zipResponse{Status: http.StatusOK}
	if a, ok := addresses[zip]; ok {
		resp.Results = []address{a}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func validateZip(zip string) string {
	switch {
	case zip == "":
		return ZipMissingMessage
	case strings.Trim(zip, "0123456789") != "":
		return ZipDigitsMessage
	case len(zip) != 7:
		return ZipLengthMessage
	}
	return ""
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).WithField("status", status).Error("failed to encode response")
	}
}
