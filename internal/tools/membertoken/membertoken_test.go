package membertoken

import (
	"bytes"
	"flag"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("member-token", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.MemberID != "member-dev" || cfg.Nickname != "dev" {
		t.Fatalf("member = %q/%q, want member-dev/dev", cfg.MemberID, cfg.Nickname)
	}
	if cfg.TTL != time.Hour {
		t.Fatalf("TTL = %v, want 1h", cfg.TTL)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MINDMAP_MEMBER_TOKEN_SECRET", testSecret)

	fs := flag.NewFlagSet("member-token", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-id", "m-7", "-ttl", "10m", "-email", "ana@example.com"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Secret != testSecret {
		t.Fatalf("Secret not read from environment")
	}
	if cfg.MemberID != "m-7" || cfg.TTL != 10*time.Minute || cfg.Email != "ana@example.com" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestRunRequiresSecret(t *testing.T) {
	if err := Run(Config{MemberID: "m-1", TTL: time.Hour}, &bytes.Buffer{}, time.Now()); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestRunRejectsNilOutput(t *testing.T) {
	if err := Run(Config{Secret: testSecret, MemberID: "m-1", TTL: time.Hour}, nil, time.Now()); err == nil {
		t.Fatal("expected error for nil output")
	}
}

func TestRunRejectsShortSecret(t *testing.T) {
	if err := Run(Config{Secret: "short", MemberID: "m-1", TTL: time.Hour}, &bytes.Buffer{}, time.Now()); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestRunWritesVerifiableToken(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := Config{Secret: testSecret, Issuer: "dev", TTL: time.Hour, MemberID: "m-1", Nickname: "ana", Email: "ana@example.com"}
	if err := Run(cfg, buf, time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}

	verifier, err := member.NewVerifier([]byte(testSecret), "dev")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	claims, err := verifier.Verify(strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	got := claims.Member()
	if got.ID != "m-1" || got.Nickname != "ana" || !got.LoginEmailVerified {
		t.Fatalf("member = %+v", got)
	}
}

func TestRunWritesCallbackURLWhenBaseURLSet(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := Config{Secret: testSecret, TTL: time.Hour, MemberID: "m-1", BaseURL: "https://mindmap.example.com/"}
	if err := Run(cfg, buf, time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}
	parsed, err := url.Parse(strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if parsed.Host != "mindmap.example.com" || parsed.Path != "/auth/callback" {
		t.Fatalf("callback url = %q", buf.String())
	}
	if parsed.Query().Get(member.TokenParam) == "" {
		t.Fatalf("callback url missing token: %q", buf.String())
	}
}
