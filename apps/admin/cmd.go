package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/acadly/spams/core/academic"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc *academic.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  reset                      - reset the document store to the seed data")
	fmt.Println("  clear                      - delete the stored document")
	fmt.Println("  resetpassword -email EMAIL - reset a user's password")
	fmt.Println("  dashboard -email EMAIL     - print a user's dashboard")
	fmt.Println("  report -type TYPE          - print an aggregated report")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	dashboardCmd := flag.NewFlagSet("dashboard", flag.ExitOnError)
	dashboardEmail := dashboardCmd.String("email", "", "The user's email.")

	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	reportType := reportCmd.String("type", "", "One of: student_performance, attendance_summary, cie_summary.")

	switch args[1] {
	case "reset":
		return cli.reset()
	case "clear":
		return cli.clear()
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, string(pwd))
	case "dashboard":
		if err := dashboardCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *dashboardEmail == "" {
			dashboardCmd.Usage()
			return errHelp
		}
		return cli.dashboard(*dashboardEmail)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *reportType == "" {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(*reportType)
	default:
		cli.printUsage()
		return errHelp
	}
}
