package services

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"clara-backend/pkg/log"
)

// OutOfRangeAlertBody is the fixed text sent to the caregiver.
const OutOfRangeAlertBody = "Clara alert: your loved one has left their safe zone. Please check on them as soon as possible."

// messageCreator is the slice of the Twilio REST API the service needs.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type SMSService struct {
	api  messageCreator
	from string
	to   string
}

func NewSMSService(accountSID, authToken, from, to string) *SMSService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newSMSService(client.Api, from, to)
}

func newSMSService(api messageCreator, from, to string) *SMSService {
	return &SMSService{api: api, from: from, to: to}
}

// SendOutOfRangeAlert texts the caregiver and returns the provider's
// message SID. Every call sends a new message.
func (s *SMSService) SendOutOfRangeAlert(ctx context.Context) (string, error) {
	// The Twilio client takes no context; skip the send if the caller is gone.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(OutOfRangeAlertBody)
	params.SetFrom(s.from)
	params.SetTo(s.to)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return "", &UpstreamError{Provider: "twilio", Err: err}
	}

	var sid string
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	log.Infow("Out-of-range SMS sent", "message_id", sid, "to", s.to)
	return sid, nil
}
