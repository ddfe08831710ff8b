package http

import (
	"log/slog"
	"net/http"

	"kharcha/internal/auth"
	"kharcha/internal/core"
	"kharcha/internal/services"
)

// authViewModel holds data for the login and signup pages.
type authViewModel struct {
	Error string
	Email string
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// Already logged in? Straight to the dashboard.
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if _, ok := s.sessions.Get(cookie.Value); ok {
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}
		}
		s.render(w, r, "login.html", authViewModel{})
	case http.MethodPost:
		s.login(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, "login.html", authViewModel{Error: "Invalid form submission"})
		return
	}

	email := core.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		s.render(w, r, "login.html", authViewModel{Error: "Email and password are required", Email: email})
		return
	}

	user := s.users.FindByEmail(r.Context(), email)
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		s.render(w, r, "login.html", authViewModel{Error: "Invalid email or password", Email: email})
		return
	}

	s.startSession(w, r, user.UserID, user.Email, "login.html")
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "signup.html", authViewModel{})
	case http.MethodPost:
		s.signup(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, "signup.html", authViewModel{Error: "Invalid form submission"})
		return
	}

	email := core.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" {
		s.render(w, r, "signup.html", authViewModel{Error: "Email is required"})
		return
	}
	if len(password) < auth.MinPasswordLength {
		s.render(w, r, "signup.html", authViewModel{Error: "Password must be at least 6 characters", Email: email})
		return
	}

	// Best-effort uniqueness check; the row store has no atomic
	// check-and-insert, so a concurrent duplicate can still land.
	if existing := s.users.FindByEmail(r.Context(), email); existing != nil {
		s.render(w, r, "signup.html", authViewModel{Error: "An account with this email already exists", Email: email})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.ErrorContext(r.Context(), "Password hash failed", "error", err)
		s.render(w, r, "signup.html", authViewModel{Error: "An error occurred. Please try again.", Email: email})
		return
	}

	userID := services.GenerateUserID()
	if err := s.users.Create(r.Context(), userID, email, hash); err != nil {
		slog.ErrorContext(r.Context(), "User create failed", "error", err, "email", email)
		s.render(w, r, "signup.html", authViewModel{Error: "Could not create the account. Please try again.", Email: email})
		return
	}

	s.startSession(w, r, userID, email, "signup.html")
}

// startSession issues a session token and cookie, then redirects to the
// dashboard. On token failure it re-renders the given auth page.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, userID, email, errPage string) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.ErrorContext(r.Context(), "Session token generation failed", "error", err)
		s.render(w, r, errPage, authViewModel{Error: "An error occurred. Please try again.", Email: email})
		return
	}

	s.sessions.Create(token, userID, email)
	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
