// giftctl drives the Gift API from the terminal through the same client
// the pages use, persisting its session under the user's home directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ksaito/giftapi/internal/client"
	"github.com/ksaito/giftapi/internal/config"
)

const usage = `usage: giftctl <command> [flags]

commands:
  register         create an account and start a session
  login            authenticate and start a session
  logout           end the session
  forgot-password  request a password reset email
  profile          show the authenticated profile
  update-profile   change profile fields
  change-password  replace the account password
  session          show the locally persisted session
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	store := client.NewFileSessionStore(filepath.Join(home, ".giftapi", "session.json"))
	api := client.New(cfg.Client, store, nil)

	ctx := context.Background()

	if err := run(ctx, api, os.Args[1], os.Args[2:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, api *client.Client, command string, args []string) error {
	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password (min 8 characters)")
		firstName := fs.String("first-name", "", "first name")
		lastName := fs.String("last-name", "", "last name")
		birthDate := fs.String("birth-date", "", "birth date (YYYY-MM-DD)")
		_ = fs.Parse(args)

		session, err := api.Register(ctx, client.RegisterInput{
			Email:     *email,
			Password:  *password,
			FirstName: *firstName,
			LastName:  *lastName,
			BirthDate: *birthDate,
		})
		if err != nil {
			return err
		}
		return printJSON(session.User)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		remember := fs.Bool("remember", false, "persist the remember-me flag")
		_ = fs.Parse(args)

		session, err := api.Login(ctx, *email, *password, *remember)
		if err != nil {
			return err
		}
		return printJSON(session.User)

	case "logout":
		return api.Logout(ctx)

	case "forgot-password":
		fs := flag.NewFlagSet("forgot-password", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		_ = fs.Parse(args)

		message, err := api.ForgotPassword(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil

	case "profile":
		user, err := api.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "update-profile":
		fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
		firstName := fs.String("first-name", "", "first name (empty keeps current)")
		lastName := fs.String("last-name", "", "last name (empty keeps current)")
		birthDate := fs.String("birth-date", "", "birth date (empty keeps current)")
		_ = fs.Parse(args)

		user, err := api.UpdateProfile(ctx, client.ProfileUpdate{
			FirstName: *firstName,
			LastName:  *lastName,
			BirthDate: *birthDate,
		})
		if err != nil {
			return err
		}
		return printJSON(user)

	case "change-password":
		fs := flag.NewFlagSet("change-password", flag.ExitOnError)
		current := fs.String("current", "", "current password")
		next := fs.String("new", "", "new password")
		_ = fs.Parse(args)

		if err := api.ChangePassword(ctx, *current, *next); err != nil {
			return err
		}
		fmt.Println("password changed")
		return nil

	case "session":
		session, err := api.Session()
		if err != nil {
			return err
		}
		return printJSON(session)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "giftctl:", err)
	os.Exit(1)
}
