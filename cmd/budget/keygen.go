package main

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"budget-tracker/internal/config"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA keypair for local session tokens",
		Long: `Print a fresh RSA private key as PEM and the matching public key in the
base64 form expected by IDENTITY_PUBLIC_KEY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			privateKey, publicKey, err := config.GenerateRSAKeyPair()
			if err != nil {
				return err
			}

			encoded, err := config.EncodePublicKey(publicKey)
			if err != nil {
				return err
			}

			privatePEM := pem.EncodeToMemory(&pem.Block{
				Type:  "RSA PRIVATE KEY",
				Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "IDENTITY_PUBLIC_KEY=%s\n\n%s", encoded, privatePEM)
			return nil
		},
	}
}
