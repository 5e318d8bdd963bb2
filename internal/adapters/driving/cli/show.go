package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a service provider",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var callCmd = &cobra.Command{
	Use:   "call [id]",
	Short: "Call a service provider",
	Long:  `Hands the provider's phone number to the system's tel: handler.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCall,
}

var emailCmd = &cobra.Command{
	Use:   "email [id]",
	Short: "Email a service provider",
	Long:  `Opens a new message to the provider in the system's mail client.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEmail,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output record as JSON")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(emailCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	record, err := lookup(cmd, args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(record.Name)
	if record.Tagline != "" {
		cmd.Println(record.Tagline)
	}
	cmd.Println()
	printField(cmd, "ID", record.ID.String())
	printField(cmd, "Category", record.Category)
	printField(cmd, "City", record.City)
	printField(cmd, "Rating", fmt.Sprintf("%.1f (%d reviews)", record.Rating, record.Reviews))
	printField(cmd, "Hours", record.HoursOrDefault())
	printField(cmd, "Established", record.Established.String())
	printField(cmd, "Phone", record.Phone)
	printField(cmd, "Email", record.Email)
	if record.Description != "" {
		cmd.Println()
		cmd.Println(record.Description)
	}
	return nil
}

func runCall(cmd *cobra.Command, args []string) error {
	record, err := lookup(cmd, args[0])
	if err != nil {
		return err
	}
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if err := contactService.Call(commandContext(cmd), record.Phone); err != nil {
		return fmt.Errorf("call %s: %w", record.Name, err)
	}
	cmd.Printf("Calling %s at %s\n", record.Name, record.Phone)
	return nil
}

func runEmail(cmd *cobra.Command, args []string) error {
	record, err := lookup(cmd, args[0])
	if err != nil {
		return err
	}
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if err := contactService.Email(commandContext(cmd), record.Email); err != nil {
		return fmt.Errorf("email %s: %w", record.Name, err)
	}
	cmd.Printf("Emailing %s at %s\n", record.Name, record.Email)
	return nil
}

func lookup(cmd *cobra.Command, id string) (*domain.ServiceRecord, error) {
	if err := loadCatalog(cmd); err != nil {
		return nil, err
	}
	return catalogService.Get(domain.RecordID(id))
}

func printField(cmd *cobra.Command, name, value string) {
	if value == "" {
		value = "-"
	}
	cmd.Printf("%-12s %s\n", name+":", value)
}
