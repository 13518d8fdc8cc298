package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptek/internal/adapter/repository"
	"laptek/internal/usecase"
)

var seedProductsCmd = &cobra.Command{
	Use:   "seed-products",
	Short: "Write the demo product catalog to Firestore",
	Long: `Write the catalog's demo products to the products collection.

Products keep their catalog ids, so running the command again overwrites
the earlier copies instead of duplicating them.`,
	Args: cobra.NoArgs,
	RunE: runSeedProducts,
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Store the default categories and marketplace settings",
	Long: `Write the catalog's category taxonomy and default marketplace settings.

Marketplaces that already have stored settings are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInitDB,
}

func runSeedProducts(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	categories := usecase.NewCategoryUseCase(repository.NewFirestoreCategoryRepository(e.clients.Firestore), e.store)
	products := usecase.NewProductUseCase(repository.NewFirestoreProductRepository(e.clients.Firestore), categories, nil)

	n, err := products.Seed(ctx, e.store.SeedProducts())
	if err != nil {
		return fmt.Errorf("seed products (%d written): %w", n, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products\n", n)
	return nil
}

func runInitDB(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	categories := usecase.NewCategoryUseCase(repository.NewFirestoreCategoryRepository(e.clients.Firestore), e.store)
	n, err := categories.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d categories\n", n)

	marketplaces := usecase.NewMarketplaceUseCase(repository.NewFirestoreMarketplaceRepository(e.clients.Firestore), e.store, nil)
	n, err = marketplaces.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed marketplaces: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d marketplace settings\n", n)
	return nil
}
