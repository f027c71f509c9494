package alert

import (
	"log"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"go-lifeline/types"
)

// CallTwiML is the fixed script spoken to the responder.
const CallTwiML = `<Response><Say voice="alice" language="en-US">emergency situation, please help.</Say></Response>`

const skipWarning = "Telephony credentials are not fully configured. Skipping call."

// Result reports what happened to the alert call. Skipped and Error are
// soft outcomes surfaced to the user; neither aborts the pipeline.
type Result struct {
	Skipped bool   `json:"skipped"`
	Warning string `json:"warning,omitempty"`
	CallSID string `json:"callSid,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Dispatcher places the fixed-message voice call from the configured
// sender to the single configured recipient.
type Dispatcher struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func NewDispatcher(accountSID, authToken, from, to string) *Dispatcher {
	return &Dispatcher{AccountSID: accountSID, AuthToken: authToken, From: from, To: to}
}

// Configured reports whether all four call credentials are present.
func (d *Dispatcher) Configured() bool {
	return d.AccountSID != "" && d.AuthToken != "" && d.From != "" && d.To != ""
}

// Dispatch places the call. Missing credentials skip with a warning
// rather than failing; placement failures come back as a DispatchError.
func (d *Dispatcher) Dispatch() Result {
	if !d.Configured() {
		log.Println(skipWarning)
		return Result{Skipped: true, Warning: skipWarning}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: d.AccountSID,
		Password: d.AuthToken,
	})

	params := &twilioapi.CreateCallParams{}
	params.SetTo(d.To)
	params.SetFrom(d.From)
	params.SetTwiml(CallTwiML)

	call, err := client.Api.CreateCall(params)
	if err != nil {
		dispatchErr := &types.DispatchError{Err: err}
		log.Printf("%v", dispatchErr)
		return Result{Error: dispatchErr.Error()}
	}

	result := Result{}
	if call.Sid != nil {
		result.CallSID = *call.Sid
	}
	log.Printf("Initiating emergency call to %s (Call SID: %s)", d.To, result.CallSID)
	return result
}
