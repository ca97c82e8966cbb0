package main

import (
	"encoding/json"
	"fmt"

	"github.com/acadly/spams/core/academic"
)

func (cli *commandLine) reset() error {
	if !cli.svc.ResetToSeed() {
		return academic.ErrWriteFailed
	}
	fmt.Println("document store reset to seed data")
	return nil
}

func (cli *commandLine) clear() error {
	cli.svc.Clear()
	fmt.Println("stored document deleted")
	return nil
}

func (cli *commandLine) report(reportType string) error {
	rep, err := cli.svc.GenerateReport(reportType)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
