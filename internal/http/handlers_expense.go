package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/core"
)

// expenseFormViewModel holds data for the add-expense form.
type expenseFormViewModel struct {
	Email        string
	Categories   []string
	PaymentModes []string
	Today        string
	Now          string
	Error        string
	Saved        bool
}

// expenseRowViewModel is one rendered row of the expense list.
type expenseRowViewModel struct {
	Date        string
	Time        string
	Amount      string
	Category    string
	PaymentMode string
	Notes       string
}

// expenseListViewModel holds the filtered expense list.
type expenseListViewModel struct {
	Email    string
	Range    string
	From     string
	To       string
	Expenses []expenseRowViewModel
	Total    string
	Count    int
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "add_expense.html", s.expenseForm(sess.Email, "", false))
	case http.MethodPost:
		s.createExpense(w, r, sess.UserID, sess.Email)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) expenseForm(email, errMsg string, saved bool) expenseFormViewModel {
	now := time.Now()
	return expenseFormViewModel{
		Email:        email,
		Categories:   core.Categories,
		PaymentModes: core.PaymentModes,
		Today:        now.Format("2006-01-02"),
		Now:          now.Format("15:04"),
		Error:        errMsg,
		Saved:        saved,
	}
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request, userID, email string) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Invalid form submission", false))
		return
	}

	date := sanitizeInput(r.Form.Get("date"))
	clock := sanitizeInput(r.Form.Get("time"))
	amountStr := sanitizeInput(r.Form.Get("amount"))
	category := sanitizeInput(r.Form.Get("category"))
	paymentMode := sanitizeInput(r.Form.Get("payment_mode"))
	notes := sanitizeInput(r.Form.Get("notes"))

	if !validDate(date) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Invalid date", false))
		return
	}
	if clock != "" && !validClock(clock) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Invalid time", false))
		return
	}
	if !core.ValidCategory(category) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Invalid category", false))
		return
	}
	if !core.ValidPaymentMode(paymentMode) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Invalid payment mode", false))
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Amount must be a positive number", false))
		return
	}

	exp := core.Expense{
		UserID:      userID,
		Date:        date,
		Time:        clock,
		Amount:      amount,
		Category:    category,
		PaymentMode: paymentMode,
		Notes:       notes,
	}

	// Writes surface their failures, unlike the lenient reads elsewhere.
	if err := s.expenses.Add(r.Context(), exp); err != nil {
		slog.ErrorContext(r.Context(), "Expense append error", "error", err, "user_id", userID, "amount", amountStr)
		w.WriteHeader(http.StatusInternalServerError)
		s.render(w, r, "add_expense.html", s.expenseForm(email, "Could not save the expense. Please try again.", false))
		return
	}

	s.render(w, r, "add_expense.html", s.expenseForm(email, "", true))
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
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

	rng := r.URL.Query().Get("range")
	from, to := rangeBounds(rng, time.Now())

	expenses, err := s.expenses.Query(r.Context(), sess.UserID, from, to)
	if err != nil {
		slog.ErrorContext(r.Context(), "Expense query failed", "error", err, "user_id", sess.UserID)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rowsVM := make([]expenseRowViewModel, 0, len(expenses))
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
		rowsVM = append(rowsVM, expenseRowViewModel{
			Date:        e.Date,
			Time:        e.Time,
			Amount:      formatAmount(e.Amount),
			Category:    e.Category,
			PaymentMode: e.PaymentMode,
			Notes:       e.Notes,
		})
	}

	s.render(w, r, "expenses.html", expenseListViewModel{
		Email:    sess.Email,
		Range:    rng,
		From:     from,
		To:       to,
		Expenses: rowsVM,
		Total:    formatAmount(total),
		Count:    len(rowsVM),
	})
}

// rangeBounds maps a named range to inclusive date bounds. Unknown or
// empty names mean no bounds at all.
func rangeBounds(name string, now time.Time) (from, to string) {
	const layout = "2006-01-02"
	switch name {
	case "today":
		w := core.DayWindow(now)
		return w.Start.Format(layout), w.End.Format(layout)
	case "week":
		w := core.WeekWindow(now)
		return w.Start.Format(layout), w.End.Format(layout)
	case "month":
		w := core.MonthWindow(now)
		return w.Start.Format(layout), w.End.Format(layout)
	default:
		return "", ""
	}
}
