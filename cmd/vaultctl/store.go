// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/keyvault/config"
	"github.com/sage-x-project/keyvault/crypto/storage"
	"github.com/sage-x-project/keyvault/crypto/storage/postgres"
)

var storeConfigPath string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Save, load, list, and delete vault records in a configured RecordStore",
}

var (
	storeSaveID   string
	storeSaveFile string
)

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a serialized vault record under an id",
	RunE:  runStoreSave,
}

var storeLoadID string

var storeLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a serialized vault record by id",
	RunE:  runStoreLoad,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all record ids",
	RunE:  runStoreList,
}

var storeDeleteID string

var storeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a record by id",
	RunE:  runStoreDelete,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.PersistentFlags().StringVarP(&storeConfigPath, "config", "c", "", "Path to a config file (optional; defaults apply otherwise)")

	storeCmd.AddCommand(storeSaveCmd)
	storeSaveCmd.Flags().StringVar(&storeSaveID, "id", "", "Record id (required)")
	storeSaveCmd.Flags().StringVarP(&storeSaveFile, "vault", "v", "", "Vault file to save (required)")
	_ = storeSaveCmd.MarkFlagRequired("id")
	_ = storeSaveCmd.MarkFlagRequired("vault")

	storeCmd.AddCommand(storeLoadCmd)
	storeLoadCmd.Flags().StringVar(&storeLoadID, "id", "", "Record id (required)")
	_ = storeLoadCmd.MarkFlagRequired("id")

	storeCmd.AddCommand(storeListCmd)

	storeCmd.AddCommand(storeDeleteCmd)
	storeDeleteCmd.Flags().StringVar(&storeDeleteID, "id", "", "Record id (required)")
	_ = storeDeleteCmd.MarkFlagRequired("id")
}

// openStore builds the RecordStore selected by config.
func openStore(ctx context.Context) (storage.RecordStore, error) {
	var cfg *config.Config
	var err error
	if storeConfigPath != "" {
		cfg, err = config.LoadFromFile(storeConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Storage.FilePath)
	case "postgres":
		pg := cfg.Storage.Postgres
		if pg == nil {
			return nil, fmt.Errorf("postgres backend selected but storage.postgres is not configured")
		}
		return postgres.NewStore(ctx, &postgres.Config{
			Host:     pg.Host,
			Port:     pg.Port,
			User:     pg.User,
			Password: pg.Password,
			Database: pg.Database,
			SSLMode:  pg.SSLMode,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func runStoreSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(storeSaveFile)
	if err != nil {
		return fmt.Errorf("read vault file: %w", err)
	}

	if err := store.Save(ctx, storeSaveID, string(data)); err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	fmt.Printf("Saved record %q\n", storeSaveID)
	return nil
}

func runStoreLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	data, err := store.Load(ctx, storeLoadID)
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}

	fmt.Println(data)
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	ids, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	if err := store.Delete(ctx, storeDeleteID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	fmt.Printf("Deleted record %q\n", storeDeleteID)
	return nil
}
