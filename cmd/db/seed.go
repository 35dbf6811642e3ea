package db

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

const seedFileFlag = "file"

func newSeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds chain and aggregation wallet definitions",
		Long: `Reads a YAML seed file and inserts or updates the defined
chains and aggregation wallets. Existing rows are matched by their
natural key and updated in place.`,
		Run: func(cmd *cobra.Command, _ []string) {
			seedFile, err := cmd.Flags().GetString(seedFileFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			if err := applySeed(cmd.Context(), seedFile); err != nil {
				log.Fatal().Err(err).Msg("Error while seeding database")
			}
		},
	}

	cmd.Flags().StringP(seedFileFlag, "f", filepath.Join(util.GetProjectRootDir(), "config", "seed.yml"), "Path to the YAML seed file")

	return cmd
}

type seedChain struct {
	ChainID               int    `mapstructure:"chain_id"`
	Name                  string `mapstructure:"name"`
	ChainType             string `mapstructure:"chain_type"`
	NativeSymbol          string `mapstructure:"native_symbol"`
	NativeDecimals        int    `mapstructure:"native_decimals"`
	RPCUrls               string `mapstructure:"rpc_urls"`
	RequiredConfirmations int    `mapstructure:"required_confirmations"`
	SweepGasLimit         int64  `mapstructure:"sweep_gas_limit"`
	MaxWithdrawAmount     string `mapstructure:"max_withdraw_amount"`
	IsActive              bool   `mapstructure:"is_active"`
}

type seedAdminWallet struct {
	ChainID  int    `mapstructure:"chain_id"`
	Address  string `mapstructure:"address"`
	IsActive bool   `mapstructure:"is_active"`
}

func applySeed(ctx context.Context, seedFile string) error {
	v := viper.New()
	v.SetConfigFile(seedFile)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read seed file %q", seedFile)
	}

	var seedChains []seedChain
	if err := v.UnmarshalKey("chains", &seedChains); err != nil {
		return errors.Wrap(err, "failed to parse chains")
	}

	var seedAdminWallets []seedAdminWallet
	if err := v.UnmarshalKey("admin_wallets", &seedAdminWallets); err != nil {
		return errors.Wrap(err, "failed to parse admin_wallets")
	}

	cfg := config.DefaultServiceConfigFromEnv()

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}

	for _, sc := range seedChains {
		if err := upsertChain(ctx, db, sc); err != nil {
			return errors.Wrapf(err, "failed to seed chain %d", sc.ChainID)
		}
	}

	for _, sw := range seedAdminWallets {
		if err := upsertAdminWallet(ctx, db, sw); err != nil {
			return errors.Wrapf(err, "failed to seed admin wallet for chain %d", sw.ChainID)
		}
	}

	log.Info().
		Int("chains", len(seedChains)).
		Int("adminWallets", len(seedAdminWallets)).
		Msg("Seed applied")

	return nil
}

func upsertChain(ctx context.Context, db *sql.DB, sc seedChain) error {
	chain, err := models.FindChain(ctx, db, sc.ChainID)
	if errors.Is(err, sql.ErrNoRows) {
		chain = &models.Chain{ChainID: sc.ChainID}
		applyChainSeed(chain, sc)

		return chain.Insert(ctx, db, boil.Infer())
	} else if err != nil {
		return err
	}

	applyChainSeed(chain, sc)
	_, err = chain.Update(ctx, db, boil.Infer())

	return err
}

func applyChainSeed(chain *models.Chain, sc seedChain) {
	chain.Name = sc.Name
	chain.ChainType = sc.ChainType
	chain.NativeSymbol = sc.NativeSymbol
	chain.NativeDecimals = sc.NativeDecimals
	chain.RPCUrls = sc.RPCUrls
	chain.RequiredConfirmations = sc.RequiredConfirmations
	chain.SweepGasLimit = sc.SweepGasLimit
	chain.MaxWithdrawAmount = sc.MaxWithdrawAmount
	chain.IsActive = sc.IsActive
}

func upsertAdminWallet(ctx context.Context, db *sql.DB, sw seedAdminWallet) error {
	wallet, err := models.AdminWallets(
		models.AdminWalletWhere.ChainID.EQ(sw.ChainID),
		models.AdminWalletWhere.Address.EQ(sw.Address),
	).One(ctx, db)
	if errors.Is(err, sql.ErrNoRows) {
		wallet = &models.AdminWallet{
			ID:       uuid.New().String(),
			ChainID:  sw.ChainID,
			Address:  sw.Address,
			IsActive: sw.IsActive,
		}

		return wallet.Insert(ctx, db, boil.Infer())
	} else if err != nil {
		return err
	}

	wallet.IsActive = sw.IsActive
	_, err = wallet.Update(ctx, db, boil.Infer())

	return err
}
