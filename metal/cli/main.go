package main

import (
	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/seeder"
	"github.com/carmegar/blogpage/metal/cli/accounts"
	"github.com/carmegar/blogpage/metal/cli/panel"
	"github.com/carmegar/blogpage/metal/cli/posts"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/metal/kernel"
	"github.com/carmegar/blogpage/pkg/cli"
	"github.com/carmegar/blogpage/pkg/portal"
)

var environment *env.Environment
var dbConn *database.Connection

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())

	if err != nil {
		panic(err)
	}

	environment = secrets
	dbConn = kernel.MakeDbConnection(environment)
}

func main() {
	cli.ClearScreen()

	menu := panel.MakeMenu()

	for {
		err := menu.CaptureInput()

		if err != nil {
			cli.Errorln(err.Error())
			continue
		}

		switch menu.GetChoice() {
		case 1:
			if err = importBlogPost(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 2:
			if err = createAccount(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 3:
			if err = promoteAccount(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 4:
			if err = seedDemoContent(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 5:
			if err = truncateDatabase(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 0:
			cli.Successln("Goodbye!")
			return
		default:
			cli.Errorln("Unknown option. Try again.")
		}

		cli.Blueln("Press Enter to continue...")

		menu.PrintLine()
	}
}

func importBlogPost(menu panel.Menu) error {
	input, err := menu.CapturePostURL()

	if err != nil {
		return err
	}

	handler := posts.MakeHandler(input.Url, dbConn)

	return handler.Import()
}

func createAccount(menu panel.Menu) error {
	name, err := menu.CaptureAccountName()

	if err != nil {
		return err
	}

	email, err := menu.CaptureEmail()

	if err != nil {
		return err
	}

	password, err := menu.CapturePassword()

	if err != nil {
		return err
	}

	role, err := menu.CaptureRole()

	if err != nil {
		return err
	}

	return accounts.MakeHandler(dbConn).CreateAccount(name, email, password, role)
}

func promoteAccount(menu panel.Menu) error {
	email, err := menu.CaptureEmail()

	if err != nil {
		return err
	}

	role, err := menu.CaptureRole()

	if err != nil {
		return err
	}

	return accounts.MakeHandler(dbConn).PromoteAccount(email, role)
}

func seedDemoContent() error {
	if err := seeder.MakeSeeder(dbConn, environment).Execute(); err != nil {
		return err
	}

	cli.Successln("Demo content seeded successfully.")

	return nil
}

func truncateDatabase() error {
	if err := database.NewTruncate(dbConn, environment).Execute(); err != nil {
		return err
	}

	cli.Successln("Local database truncated successfully.")

	return nil
}
