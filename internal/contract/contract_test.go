package contract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/contract"
)

func TestLoad_RegistersEveryContract(t *testing.T) {
	r, err := contract.Load()
	require.NoError(t, err)

	names := r.Names()
	for _, n := range []string{
		contract.LoginForm, contract.BoardSetting, contract.ChallengeAnswer,
		contract.PostUploadWithoutFile, contract.Sticky, contract.User,
		contract.Number, contract.Boolean,
	} {
		assert.Contains(t, names, n)
	}
}

func TestValidateJSON(t *testing.T) {
	t.Parallel()
	r := contract.MustLoad()

	tests := []struct {
		name     string
		contract string
		body     string
		want     bool
	}{
		{name: "login ok", contract: contract.LoginForm, body: `{"ident":"root","pass":"hunter2"}`, want: true},
		{name: "login missing pass", contract: contract.LoginForm, body: `{"ident":"root"}`, want: false},
		{name: "login pass number", contract: contract.LoginForm, body: `{"ident":"root","pass":7}`, want: false},
		{name: "login extra field", contract: contract.LoginForm, body: `{"ident":"root","pass":"x","admin":true}`, want: false},
		{name: "login array", contract: contract.LoginForm, body: `[]`, want: false},
		{name: "login trailing data", contract: contract.LoginForm, body: `{"ident":"a","pass":"b"} {}`, want: false},
		{name: "login not json", contract: contract.LoginForm, body: `ident=root`, want: false},
		{name: "board ok", contract: contract.BoardSetting, body: `{"name":"g","title":"Technology","filesize_limit":4096,"worksafe":true,"bump_limit":300}`, want: true},
		{name: "board worksafe string", contract: contract.BoardSetting, body: `{"name":"g","title":"T","filesize_limit":1,"worksafe":"yes","bump_limit":1}`, want: false},
		{name: "board with threads", contract: contract.BoardSetting, body: `{"name":"g","title":"T","filesize_limit":1,"worksafe":true,"bump_limit":1,"threads":[]}`, want: false},
		{name: "answer ok", contract: contract.ChallengeAnswer, body: `{"ans":"123456","token":"a.b.c"}`, want: true},
		{name: "answer token object", contract: contract.ChallengeAnswer, body: `{"ans":"1","token":{}}`, want: false},
		{name: "post minimal", contract: contract.PostUploadWithoutFile, body: `{"challenge":"a.b.c"}`, want: true},
		{name: "post full", contract: contract.PostUploadWithoutFile, body: `{"challenge":"a.b.c","comment":"hi","name":"anon#trip","subject":"s","email":"sage"}`, want: true},
		{name: "post null optional", contract: contract.PostUploadWithoutFile, body: `{"challenge":"a.b.c","comment":null}`, want: true},
		{name: "post without challenge", contract: contract.PostUploadWithoutFile, body: `{"comment":"hi"}`, want: false},
		{name: "post with file", contract: contract.PostUploadWithoutFile, body: `{"challenge":"a.b.c","file":"x"}`, want: false},
		{name: "sticky ok", contract: contract.Sticky, body: `{"sticky":true}`, want: true},
		{name: "user ok", contract: contract.User, body: `{"ident":"jan","pass":"p","role":"janitor"}`, want: true},
		{name: "number", contract: contract.Number, body: `12.5`, want: true},
		{name: "number string", contract: contract.Number, body: `"12"`, want: false},
		{name: "boolean", contract: contract.Boolean, body: `false`, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.ValidateJSON(tt.contract, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_SerializesFirst(t *testing.T) {
	r := contract.MustLoad()

	type login struct {
		Ident  string `json:"ident"`
		Pass   string `json:"pass"`
		hidden func()
	}
	ok, err := r.Validate(contract.LoginForm, login{Ident: "root", Pass: "x", hidden: func() {}})
	require.NoError(t, err)
	assert.True(t, ok, "unexported fields never reach the wire")

	ok, err = r.Validate(contract.LoginForm, map[string]any{"ident": "root", "pass": func() {}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Validate(contract.Number, math.NaN())
	require.NoError(t, err)
	assert.False(t, ok)

	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	ok, err = r.Validate(contract.LoginForm, cyclic)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidate_Deterministic(t *testing.T) {
	r := contract.MustLoad()
	body := []byte(`{"ans":"4","token":"x.y.z"}`)

	first, err := r.ValidateJSON(contract.ChallengeAnswer, body)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, err := r.ValidateJSON(contract.ChallengeAnswer, body)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestUnknownContract(t *testing.T) {
	r := contract.MustLoad()

	_, err := r.ValidateJSON("Nope", []byte(`{}`))
	assert.ErrorIs(t, err, contract.ErrUnknownContract)
	_, err = r.Validate("Nope", struct{}{})
	assert.ErrorIs(t, err, contract.ErrUnknownContract)
	assert.Panics(t, func() { r.Checker("Nope") })
}

func TestChecker(t *testing.T) {
	r := contract.MustLoad()
	check := r.Checker(contract.Sticky)
	assert.True(t, check([]byte(`{"sticky":false}`)))
	assert.False(t, check([]byte(`{"sticky":0}`)))
}
