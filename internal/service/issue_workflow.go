package service

// IssueState is a step of one stock-issue interaction.
type IssueState string

const (
	StateSelecting      IssueState = "selecting"
	StateEnteringAmount IssueState = "entering_amount"
	StateValidating     IssueState = "validating"
	StateCommitting     IssueState = "committing"
	StateDone           IssueState = "done"
)

// IssueSession is the per-client state of the issue workflow. It is kept in
// the client's session between requests and carries the quantity captured
// when the product was selected.
type IssueSession struct {
	State            IssueState `json:"state"`
	ProductID        int64      `json:"product_id,omitempty"`
	ProductName      string     `json:"product_name,omitempty"`
	CapturedQuantity int        `json:"captured_quantity"`
	Message          string     `json:"message,omitempty"`
}

func NewIssueSession() IssueSession {
	return IssueSession{State: StateSelecting}
}

// AcceptsAmount reports whether an amount may be submitted in this state.
func (s *IssueSession) AcceptsAmount() bool {
	return s.State == StateEnteringAmount || s.State == StateValidating
}

// MaxAmount is the upper bound offered by the amount input.
func (s *IssueSession) MaxAmount() int {
	if !s.AcceptsAmount() {
		return 0
	}
	return s.CapturedQuantity
}

func (s *IssueSession) capture(productID int64, name string, quantity int) {
	*s = IssueSession{
		State:            StateEnteringAmount,
		ProductID:        productID,
		ProductName:      name,
		CapturedQuantity: quantity,
	}
}

func (s *IssueSession) reject(message string) {
	s.State = StateValidating
	s.Message = message
}

func (s *IssueSession) fail(message string) {
	s.State = StateEnteringAmount
	s.Message = message
}

func (s *IssueSession) complete(newQuantity int, message string) {
	s.State = StateDone
	s.CapturedQuantity = newQuantity
	s.Message = message
}
