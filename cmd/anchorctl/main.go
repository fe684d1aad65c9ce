// anchorctl is the operator CLI for a running anchord daemon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	docanchorv1 "github.com/medchain/docanchor/gen/proto/docanchor/v1"
)

var (
	serverAddr string
	jsonOutput bool
	timeout    time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anchorctl",
		Short: "Client for the document anchoring daemon",
		Long: `anchorctl uploads medical documents to a running anchord daemon and
queries the resulting ingestion records: content fingerprints, storage CIDs,
and ledger transactions.`,
	}

	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "127.0.0.1:8080", "anchord gRPC address")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Minute, "RPC deadline")

	rootCmd.AddCommand(uploadCmd(), getCmd(), historyCmd(), resumeCmd(), verifyCmd(), exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dial() (docanchorv1.DocAnchorServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", serverAddr, err)
	}
	return docanchorv1.NewDocAnchorServiceClient(conn), conn, nil
}

func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func uploadCmd() *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Ingest a PDF or DOCX document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.UploadDocument(ctx, &docanchorv1.UploadDocumentRequest{
				Subject:  subject,
				Filename: filepath.Base(args[0]),
				Content:  data,
			})
			if err != nil {
				return err
			}
			printRecord(resp.GetRecord())
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Document owner address (required)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one ingestion record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.GetIngestion(ctx, &docanchorv1.GetIngestionRequest{Id: args[0]})
			if err != nil {
				return err
			}
			printRecord(resp.GetRecord())
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var subject, fp string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List ingestion records by subject or fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.ListIngestions(ctx, &docanchorv1.ListIngestionsRequest{
				Subject:     subject,
				Fingerprint: fp,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp.GetRecords())
				return nil
			}
			for _, rec := range resp.GetRecords() {
				fmt.Printf("%s  %-8s  %s  %s\n", rec.GetId(), rec.GetStatus(), rec.GetCreatedAt(), rec.GetFilename())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Filter by owner address")
	cmd.Flags().StringVar(&fp, "fingerprint", "", "Filter by content fingerprint")
	return cmd
}

func resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Re-anchor a failed ingestion from its stored checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.ResumeIngestion(ctx, &docanchorv1.ResumeIngestionRequest{Id: args[0]})
			if err != nil {
				return err
			}
			printRecord(resp.GetRecord())
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Check stored content against its anchored fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.VerifyIngestion(ctx, &docanchorv1.VerifyIngestionRequest{Id: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(resp)
				return nil
			}
			fmt.Printf("verified: %v\nfingerprint: %s\n", resp.GetVerified(), resp.GetRecomputedFingerprint())
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var subject, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a subject's ingestion history as XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := callCtx()
			defer cancel()
			resp, err := client.ExportHistory(ctx, &docanchorv1.ExportHistoryRequest{Subject: subject})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, resp.GetXlsx(), 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(resp.GetXlsx()))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Owner address (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "history.xlsx", "Output path")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func printRecord(rec *docanchorv1.IngestionRecord) {
	if jsonOutput {
		printJSON(rec)
		return
	}
	fmt.Printf("id:          %s\n", rec.GetId())
	fmt.Printf("subject:     %s\n", rec.GetSubject())
	fmt.Printf("filename:    %s\n", rec.GetFilename())
	fmt.Printf("status:      %s\n", rec.GetStatus())
	fmt.Printf("fingerprint: %s\n", rec.GetFingerprint())
	if rec.GetCid() != "" {
		fmt.Printf("cid:         %s\n", rec.GetCid())
	}
	if rec.GetTxHash() != "" {
		fmt.Printf("tx:          %s (block %d)\n", rec.GetTxHash(), rec.GetBlockNumber())
	}
	if rec.GetFailureHint() != "" {
		fmt.Printf("failure:     %s\n", rec.GetFailureHint())
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
