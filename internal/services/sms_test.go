package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	calls []*twilioApi.CreateMessageParams
	sid   *string
	err   error
}

func (f *fakeMessageCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &twilioApi.ApiV2010Message{Sid: f.sid}, nil
}

func strPtr(s string) *string { return &s }

func TestSMSService_SendOutOfRangeAlert(t *testing.T) {
	api := &fakeMessageCreator{sid: strPtr("SM123")}
	svc := newSMSService(api, "+15550000001", "+15550000002")

	sid, err := svc.SendOutOfRangeAlert(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	require.Len(t, api.calls, 1)
	params := api.calls[0]
	require.NotNil(t, params.Body)
	require.NotNil(t, params.From)
	require.NotNil(t, params.To)
	assert.Equal(t, OutOfRangeAlertBody, *params.Body)
	assert.Equal(t, "+15550000001", *params.From)
	assert.Equal(t, "+15550000002", *params.To)
}

func TestSMSService_NoDeduplication(t *testing.T) {
	api := &fakeMessageCreator{sid: strPtr("SM123")}
	svc := newSMSService(api, "+15550000001", "+15550000002")

	for i := 0; i < 2; i++ {
		_, err := svc.SendOutOfRangeAlert(context.Background())
		require.NoError(t, err)
	}

	assert.Len(t, api.calls, 2)
}

func TestSMSService_ProviderFailure(t *testing.T) {
	api := &fakeMessageCreator{err: errors.New("The 'To' number is not a valid phone number.")}
	svc := newSMSService(api, "+15550000001", "bogus")

	sid, err := svc.SendOutOfRangeAlert(context.Background())

	assert.Empty(t, sid)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "twilio", upstream.Provider)
	assert.Equal(t, "The 'To' number is not a valid phone number.", err.Error())
}

func TestSMSService_MissingSid(t *testing.T) {
	api := &fakeMessageCreator{}
	svc := newSMSService(api, "+15550000001", "+15550000002")

	sid, err := svc.SendOutOfRangeAlert(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sid)
}

func TestSMSService_CancelledContextSkipsSend(t *testing.T) {
	api := &fakeMessageCreator{sid: strPtr("SM123")}
	svc := newSMSService(api, "+15550000001", "+15550000002")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SendOutOfRangeAlert(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, api.calls)
}
