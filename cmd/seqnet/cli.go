// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/seqnet/internal/envconfig"
	"github.com/born-ml/seqnet/internal/model"
	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/optim"
	"github.com/born-ml/seqnet/internal/random"
	"github.com/born-ml/seqnet/internal/summary"
	"github.com/born-ml/seqnet/internal/tensor"
)

const version = "v0.1.0"

// The XOR truth table used by the train command.
var (
	xorInput  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorTarget = [][]float64{{0}, {1}, {1}, {0}}
)

// NewCLI builds the seqnet root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "seqnet",
		Short:         "Sequential dense-network trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train the default network on XOR",
		Args:  cobra.NoArgs,
		RunE:  TrainHandler,
	}
	addArchFlags(trainCmd)
	trainCmd.Flags().String("optimizer", "adam", "Optimizer to use (adam or sgd)")
	trainCmd.Flags().Int("epochs", envconfig.Epochs(), "Number of training epochs")
	trainCmd.Flags().Int("patience", envconfig.Patience(), "Epochs without improvement before stopping (0 disables)")
	trainCmd.Flags().Float64("lr", envconfig.LearningRate(), "Learning rate")
	trainCmd.Flags().Uint64("seed", envconfig.Seed(), "Random seed")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the layers of the default network",
		Args:  cobra.NoArgs,
		RunE:  SummaryHandler,
	}
	addArchFlags(summaryCmd)

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		Run:   EnvHandler,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}

	rootCmd.AddCommand(trainCmd, summaryCmd, envCmd, versionCmd)

	return rootCmd
}

func addArchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("hidden", 8, "Hidden layer width")
	cmd.Flags().Float64("dropout", 0, "Dropout probability after the hidden activation (0 disables)")
	cmd.Flags().Bool("batchnorm", false, "Insert batch normalization after the hidden layer")
}

// architecture describes the default XOR network.
type architecture struct {
	hidden    int
	dropout   float64
	batchNorm bool
}

func architectureFromFlags(cmd *cobra.Command) (architecture, error) {
	hidden, err := cmd.Flags().GetInt("hidden")
	if err != nil {
		return architecture{}, err
	}
	dropout, err := cmd.Flags().GetFloat64("dropout")
	if err != nil {
		return architecture{}, err
	}
	batchNorm, err := cmd.Flags().GetBool("batchnorm")
	if err != nil {
		return architecture{}, err
	}

	if hidden <= 0 {
		return architecture{}, fmt.Errorf("--hidden must be positive, got %d", hidden)
	}
	if dropout < 0 || dropout >= 1 {
		return architecture{}, fmt.Errorf("--dropout must be in [0, 1), got %v", dropout)
	}
	return architecture{hidden: hidden, dropout: dropout, batchNorm: batchNorm}, nil
}

// build assembles Dense → [BatchNorm] → ReLU → [Dropout] → Dense → Sigmoid.
func (a architecture) build(opts ...model.Option) *model.Model {
	m := model.New(opts...)
	m.Add(nn.NewDense(2, a.hidden, nn.WithName("hidden")))
	if a.batchNorm {
		m.Add(nn.NewBatchNorm(a.hidden))
	}
	m.Add(nn.NewReLU())
	if a.dropout > 0 {
		m.Add(nn.NewDropout(a.dropout))
	}
	m.Add(nn.NewDense(a.hidden, 1, nn.WithName("output")))
	m.Add(nn.NewSigmoid())
	return m
}

func newOptimizer(name string, lr float64) (optim.Optimizer, error) {
	switch name {
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: lr}), nil
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q (want adam or sgd)", name)
	}
}

// TrainHandler trains the default network on XOR and prints the results.
func TrainHandler(cmd *cobra.Command, _ []string) error {
	arch, err := architectureFromFlags(cmd)
	if err != nil {
		return err
	}

	optimizerName, _ := cmd.Flags().GetString("optimizer")
	epochs, _ := cmd.Flags().GetInt("epochs")
	patience, _ := cmd.Flags().GetInt("patience")
	lr, _ := cmd.Flags().GetFloat64("lr")
	seed, _ := cmd.Flags().GetUint64("seed")

	optimizer, err := newOptimizer(optimizerName, lr)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: envconfig.LogLevel()}))
	random.SetSeed(seed)
	m := arch.build(model.WithLogger(logger))

	input := tensor.MustFromRows(xorInput)
	target := tensor.MustFromRows(xorTarget)

	logger.Info("training", "optimizer", optimizerName, "epochs", epochs, "patience", patience, "lr", lr, "seed", seed)
	history, err := m.Train(input, target, nn.NewMSELoss(), optimizer, model.TrainConfig{
		Epochs:   epochs,
		Patience: patience,
	})
	if err != nil {
		return err
	}

	m.SetTraining(false)
	pred, err := m.Forward(input)
	if err != nil {
		return err
	}
	accuracy, err := model.ComputeAccuracy(pred, target)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	summary.Render(w, m.Units())
	fmt.Fprintln(w)

	if n := len(history.Epochs); n > 0 {
		last := history.Epochs[n-1]
		fmt.Fprintf(w, "epochs: %d  final loss: %.6f  best loss: %.6f (epoch %d)\n", n, last.Loss, history.BestLoss, history.BestEpoch)
	}
	if history.StoppedEarly {
		fmt.Fprintln(w, "stopped early")
	}
	fmt.Fprintf(w, "accuracy: %.2f\n\n", accuracy)

	renderPredictions(w, input, target, pred)
	return nil
}

func renderPredictions(w io.Writer, input, target, pred *tensor.Tensor) {
	var data [][]string
	for i := range input.Rows() {
		data = append(data, []string{
			strconv.FormatFloat(input.At(i, 0), 'g', -1, 64),
			strconv.FormatFloat(input.At(i, 1), 'g', -1, 64),
			strconv.FormatFloat(target.At(i, 0), 'g', -1, 64),
			strconv.FormatFloat(pred.At(i, 0), 'f', 4, 64),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"X1", "X2", "TARGET", "PREDICTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

// SummaryHandler prints the layer table for the default network.
func SummaryHandler(cmd *cobra.Command, _ []string) error {
	arch, err := architectureFromFlags(cmd)
	if err != nil {
		return err
	}

	summary.Render(cmd.OutOrStdout(), arch.build().Units())
	return nil
}

// EnvHandler prints every configuration variable and its current value.
func EnvHandler(cmd *cobra.Command, _ []string) {
	vars := envconfig.AsMap()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data [][]string
	for _, k := range keys {
		v := vars[k]
		data = append(data, []string{v.Name, fmt.Sprint(v.Value), v.Description})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "seqnet version %s\n", version)
}
