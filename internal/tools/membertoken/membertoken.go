// Package membertoken mints signed member tokens for exercising the sign in
// callback without a live identity provider.
package membertoken

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/mindmap.space/internal/platform/cmd"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// Config holds configuration for token minting.
type Config struct {
	Secret string        `env:"MINDMAP_MEMBER_TOKEN_SECRET"`
	Issuer string        `env:"MINDMAP_MEMBER_TOKEN_ISSUER"`
	TTL    time.Duration `env:"MINDMAP_MEMBER_TOKEN_TTL" envDefault:"1h"`
	// BaseURL, when set, prints a ready callback URL instead of the bare
	// token.
	BaseURL string `env:"MINDMAP_WEB_PUBLIC_BASE_URL"`

	MemberID  string
	Nickname  string
	FirstName string
	LastName  string
	Email     string
	Status    string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{MemberID: "member-dev", Nickname: "dev"}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Issuer, "issuer", cfg.Issuer, "token issuer")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "token lifetime")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "site origin; prints a callback URL when set")
	fs.StringVar(&cfg.MemberID, "id", cfg.MemberID, "member id (token subject)")
	fs.StringVar(&cfg.Nickname, "nickname", cfg.Nickname, "member nickname")
	fs.StringVar(&cfg.FirstName, "first-name", cfg.FirstName, "member first name")
	fs.StringVar(&cfg.LastName, "last-name", cfg.LastName, "member last name")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "member login email")
	fs.StringVar(&cfg.Status, "status", cfg.Status, "member status")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run signs a token for the configured member and writes it to out.
func Run(cfg Config, out io.Writer, now time.Time) error {
	if out == nil {
		return errors.New("output is required")
	}
	if strings.TrimSpace(cfg.Secret) == "" {
		return errors.New("MINDMAP_MEMBER_TOKEN_SECRET is required")
	}
	claims := member.ClaimsFor(member.Member{
		ID:                 strings.TrimSpace(cfg.MemberID),
		Nickname:           cfg.Nickname,
		FirstName:          cfg.FirstName,
		LastName:           cfg.LastName,
		LoginEmail:         cfg.Email,
		LoginEmailVerified: cfg.Email != "",
		Status:             cfg.Status,
		CreatedAt:          now,
		LastLoginAt:        now,
	})
	claims.Issuer = strings.TrimSpace(cfg.Issuer)

	token, err := member.Sign([]byte(strings.TrimSpace(cfg.Secret)), claims, now, cfg.TTL)
	if err != nil {
		return fmt.Errorf("sign member token: %w", err)
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		_, err = fmt.Fprintln(out, token)
		return err
	}
	query := url.Values{member.TokenParam: {token}}
	_, err = fmt.Fprintf(out, "%s%s?%s\n", base, routepath.AuthCallback, query.Encode())
	return err
}
