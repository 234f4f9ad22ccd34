package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyulbade/petshop-pix/internal/pix"
)

func encodeCmd() *cobra.Command {
	var p pix.Payload

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a static PIX payload",
		Example: `  pixctl encode --key test@email.com --name "Loja Teste" --city "Sao Paulo" --amount 25.50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := p.Build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().StringVarP(&p.PixKey, "key", "k", "", "PIX key (CPF, CNPJ, email, phone or random key)")
	cmd.Flags().StringVarP(&p.MerchantName, "name", "n", "", "Merchant name")
	cmd.Flags().StringVarP(&p.MerchantCity, "city", "c", "", "Merchant city")
	cmd.Flags().StringVarP(&p.Amount, "amount", "a", "", "Amount with two decimals, e.g. 49.90")
	cmd.Flags().StringVarP(&p.TransactionID, "txid", "t", "", "Transaction reference (default ***)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [payload]",
		Short: "Verify a payload's checksum and print its fields as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pix.Decode(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

func crcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crc [data]",
		Short: "Print the CRC-16/CCITT-FALSE of data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pix.Checksum(args[0]))
			return nil
		},
	}
}
