package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codearena/arena-admin/internal/interfaces/cli/credentials"
	"github.com/codearena/arena-admin/internal/shared/authorization"
	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/sdk/platform"
)

type loginGateway interface {
	Login(ctx context.Context, email, password string) (*platform.LoginResult, error)
}

func newLoginCommand(o *Options) *cobra.Command {
	var (
		email   string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the platform as a staff member",
		Long:  `Prompt for credentials, exchange them for a platform token and store it for later commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, out, log, err := o.setup()
			if err != nil {
				return err
			}
			store, err := o.credentialStore()
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = cfg.Platform.BaseURL
			}

			in := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				if email, err = prompt(in, cmd.ErrOrStderr(), "Email: "); err != nil {
					return err
				}
			}
			password, err := readPassword(in, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			client := platform.NewClient(baseURL, platform.WithTimeout(cfg.Platform.Timeout()))
			creds, err := login(cmd.Context(), client, baseURL, email, password)
			if err != nil {
				log.Debugw("login failed", "email", email, "error", err)
				return err
			}
			if err := store.Save(creds); err != nil {
				return err
			}

			out.Message("Signed in as %s (%s). Credentials saved to %s", creds.Username, creds.Role, store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Staff e-mail (prompted when empty)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Platform API root (default from config)")

	return cmd
}

// login exchanges credentials for a platform token; only staff roles may sign in.
func login(ctx context.Context, gateway loginGateway, baseURL, email, password string) (*credentials.Credentials, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	res, err := gateway.Login(ctx, email, password)
	if err != nil {
		if platform.IsUnauthorized(err) {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	role := authorization.ParseUserRole(res.User.Role)
	if !role.IsStaff() {
		return nil, fmt.Errorf("only moderators and administrators may sign in")
	}

	creds := &credentials.Credentials{
		BaseURL:     baseURL,
		AccessToken: res.AccessToken,
		StaffID:     res.User.ID,
		Username:    res.User.Username,
		Email:       res.User.Email,
		Role:        role.String(),
	}
	if res.ExpiresIn > 0 {
		creds.ExpiresAt = biztime.NowUTC().Add(time.Duration(res.ExpiresIn) * time.Second)
	}
	return creds, nil
}

func newLogoutCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored platform token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, out, _, err := o.setup()
			if err != nil {
				return err
			}
			store, err := o.credentialStore()
			if err != nil {
				return err
			}
			if err := store.Remove(); err != nil {
				return err
			}
			out.Message("Signed out")
			return nil
		},
	}
}

func prompt(in *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo on a terminal and falls back to a plain
// line so the password can be piped in.
func readPassword(in *bufio.Reader, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(in, w, "Password: ")
	}

	fmt.Fprint(w, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
