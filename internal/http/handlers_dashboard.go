package http

import (
	"log/slog"
	"net/http"
	"time"
)

// dashboardViewModel holds the spending summary cards.
type dashboardViewModel struct {
	Email   string
	Date    string
	Daily   string
	Weekly  string
	Monthly string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	now := time.Now()
	totals, err := s.expenses.Totals(r.Context(), sess.UserID, now)
	if err != nil {
		slog.ErrorContext(r.Context(), "Totals computation failed", "error", err, "user_id", sess.UserID)
	}

	s.render(w, r, "dashboard.html", dashboardViewModel{
		Email:   sess.Email,
		Date:    now.Format("Monday, 02 Jan 2006"),
		Daily:   formatAmount(totals.Daily),
		Weekly:  formatAmount(totals.Weekly),
		Monthly: formatAmount(totals.Monthly),
	})
}
