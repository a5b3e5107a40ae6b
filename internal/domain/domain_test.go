package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretNeverRendersValue(t *testing.T) {
	secret := NewSecret("hunter2")

	assert.Equal(t, "hunter2", secret.Reveal())
	assert.Equal(t, redacted, secret.String())
	assert.Equal(t, redacted, fmt.Sprintf("%v", secret))
	assert.Equal(t, redacted, fmt.Sprintf("%#v", secret))
	assert.NotContains(t, fmt.Sprintf("%+v", Credentials{Username: "bob", Password: secret}), "hunter2")

	payload, err := json.Marshal(struct{ Password Secret }{Password: secret})
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "hunter2")
}

func TestSecretClearWipesEveryCopy(t *testing.T) {
	secret := NewSecret("hunter2")
	copied := secret

	secret.Clear()

	assert.True(t, copied.IsZero())
	assert.Equal(t, "", copied.Reveal())
	assert.True(t, Secret{}.IsZero())
}

func TestCredentialsApplyOnlyOverwritesProvidedFields(t *testing.T) {
	creds := Credentials{Username: "bob", Password: NewSecret("old")}

	updated := creds.Apply(CredentialsUpdate{Password: Some(NewSecret("new"))})

	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "new", updated.Password.Reveal())
	assert.Equal(t, AccountID(""), updated.AccountID)
}

func TestCredentialsApplyExplicitEmptyValueOverwrites(t *testing.T) {
	creds := Credentials{Username: "bob", Email: "bob@example.com"}

	updated := creds.Apply(CredentialsUpdate{Email: Some("")})

	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "", updated.Email)
	assert.True(t, CredentialsUpdate{}.Empty())
	assert.False(t, CredentialsUpdate{Email: Some("")}.Empty())
}

func TestParseTransport(t *testing.T) {
	tests := []struct {
		raw  string
		want Transport
	}{
		{raw: "Link", want: TransportLink},
		{raw: "path", want: TransportPath},
		{raw: "file", want: TransportPath},
		{raw: " STREAM ", want: TransportStream},
		{raw: "Primitive", want: TransportPrimitive},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTransport(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTransport("carrier-pigeon")
	require.ErrorIs(t, err, ErrUnknownTransport)
}

func TestStatusFlagPredicates(t *testing.T) {
	flags := []StatusFlag{
		{EntityID: "m-1", Value: FlagFinished},
		{EntityID: "a-1", Value: FlagError},
		{EntityID: "a-2", Value: FlagRunning},
	}

	assert.Equal(t, []StatusFlag{{EntityID: "a-1", Value: FlagError}}, FailedFlags(flags))
	assert.False(t, AllFinished(flags))
	assert.True(t, AllFinished([]StatusFlag{{Value: FlagFinished}, {Value: FlagFinished}}))
	assert.True(t, AllFinished(nil))
}

func TestTargetsFromEntities(t *testing.T) {
	model := Model{
		ID:        "m-1",
		AccountID: "acc-1",
		Assets:    []ModelAsset{{ID: "a-1", AssetName: "Logo"}, {ID: "a-2", AssetName: "File"}},
	}

	targets := AssetTargets(model)
	require.Len(t, targets, 2)
	assert.Equal(t, TransferTarget{Name: "Logo", Kind: TargetAsset, EntityID: "a-1", AccountID: "acc-1", ModelID: "m-1"}, targets[0])
	assert.Equal(t, []string{"a-1", "a-2"}, model.AssetIDs())

	invocation := Invocation{
		ID: "inv-1",
		Inputs: []InvocationSignature{
			{ID: "in-1", SignatureID: "sig-1", DisplayTitle: "X", AccountID: "acc-1", ModelID: "m-1", InvocationID: "inv-1"},
		},
	}
	inputs := InputTargets(invocation)
	require.Len(t, inputs, 1)
	assert.Equal(t, "X", inputs[0].Name)
	assert.Equal(t, "sig-1", inputs[0].SignatureID)
	assert.Equal(t, []string{"in-1"}, invocation.InputIDs())
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	validation := &ValidationError{Fields: []string{"name", "inputs[0].display_title"}}
	assert.ErrorIs(t, validation, ErrValidation)
	assert.Contains(t, validation.Error(), "name, inputs[0].display_title")

	remote := &RemoteProcessingError{Flags: []StatusFlag{{EntityID: "a-1", Value: FlagError}}}
	assert.ErrorIs(t, remote, ErrRemoteProcessingFailed)
	assert.Contains(t, remote.Error(), "a-1")

	cause := errors.New("401 unauthorized")
	auth := &AuthenticationError{Strategy: LoginUsernamePassword, Err: cause}
	assert.ErrorIs(t, auth, ErrAuthentication)
	assert.ErrorIs(t, auth, cause)
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, Profile{Name: "default"}.Validate())
	require.ErrorIs(t, Profile{}.Validate(), ErrValidation)
	require.ErrorIs(t, Profile{Name: "../x"}.Validate(), ErrValidation)
	assert.Equal(t, "norman/work/password", PasswordSecretKey("work"))
	assert.Equal(t, "norman/work/api_key", APIKeySecretKey("work"))
}
