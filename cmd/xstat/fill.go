package main

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/gostonefire/xcontainers"
	"github.com/gostonefire/xcontainers/crt"
	"github.com/gostonefire/xcontainers/hashfunc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	fillTechnique  string
	fillCount      int
	fillRemove     int
	fillBuckets    int
	fillLoadFactor float32
	fillKeys       string
	fillSeed       int64
	fillHistogram  bool
)

var techniques = map[string]int{
	"pooled": crt.PooledChaining,
	"node":   crt.SeparateChaining,
	"linear": crt.LinearProbing,
}

func init() {
	cmd := newFillCmd()
	cmd.Flags().StringVarP(&fillTechnique, "technique", "t", "all", "Technique to fill: pooled, node, linear or all")
	cmd.Flags().IntVarP(&fillCount, "count", "n", 100000, "Number of keys to insert")
	cmd.Flags().IntVar(&fillRemove, "remove", 0, "Number of inserted keys to remove again")
	cmd.Flags().IntVar(&fillBuckets, "buckets", 0, "Initial number of buckets, 0 selects the default")
	cmd.Flags().Float32Var(&fillLoadFactor, "load-factor", 0, "Load factor, 0 selects the default")
	cmd.Flags().StringVarP(&fillKeys, "keys", "k", "int", "Key type: int, string, istring or guid")
	cmd.Flags().Int64Var(&fillSeed, "seed", 1, "Seed for the key generator")
	cmd.Flags().BoolVar(&fillHistogram, "histogram", false, "Include the bucket distribution")
	rootCmd.AddCommand(cmd)
}

func newFillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill hash tables with generated keys and show statistics",
		Long: `The fill command inserts generated keys into one or all hash table
techniques, optionally removes some of them again, and prints the resulting statistics.

Example:
  xstat fill --count 1000000
  xstat fill --technique linear --keys guid --remove 5000
  xstat fill --keys istring --histogram --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill()
		},
	}
	return cmd
}

// FillResult - Statistics of one filled table
type FillResult struct {
	Keys     string
	Inserted int
	Removed  int
	Duration time.Duration
	Stat     *xcontainers.HashMapStat
}

func runFill() error {
	if fillCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", fillCount)
	}
	if fillRemove < 0 {
		return fmt.Errorf("remove must not be negative, got %d", fillRemove)
	}
	if fillRemove > fillCount {
		return fmt.Errorf("cannot remove %d of %d keys", fillRemove, fillCount)
	}

	var selected []int
	if fillTechnique == "all" {
		selected = []int{crt.PooledChaining, crt.SeparateChaining, crt.LinearProbing}
	} else {
		technique, ok := techniques[fillTechnique]
		if !ok {
			return fmt.Errorf("unknown technique %q", fillTechnique)
		}
		selected = []int{technique}
	}

	results := make([]FillResult, 0, len(selected))
	for _, technique := range selected {
		printVerbose("Filling %s with %d %s keys\n", crt.Name(technique), fillCount, fillKeys)

		var result FillResult
		var err error
		switch fillKeys {
		case "int":
			result, err = fill(technique, hashfunc.Integer[int]{}, func(r *rand.Rand) int {
				return r.Int()
			})
		case "string":
			result, err = fill(technique, hashfunc.String{}, func(r *rand.Rand) string {
				return "key-" + strconv.FormatInt(r.Int63(), 36)
			})
		case "istring":
			result, err = fill(technique, hashfunc.NewCaseInsensitiveString(), func(r *rand.Rand) string {
				s := []byte(strconv.FormatInt(r.Int63(), 36))
				for i := range s {
					if r.Intn(2) == 0 {
						s[i] = strings.ToUpper(string(s[i]))[0]
					}
				}
				return string(s)
			})
		case "guid":
			result, err = fill(technique, hashfunc.GUID{}, func(r *rand.Rand) uuid.UUID {
				id, _ := uuid.NewRandomFromReader(r)
				return id
			})
		default:
			return fmt.Errorf("unknown key type %q", fillKeys)
		}
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if jsonOut {
		return printJSON(results)
	}
	printResults(results)
	return nil
}

// fill inserts fillCount generated keys, removes the first fillRemove of them, verifies the rest
// are still found and collects statistics
func fill[K comparable](technique int, h hashfunc.HashAlgorithm[K], gen func(r *rand.Rand) K) (result FillResult, err error) {
	hm, _, err := xcontainers.NewHashMap[K, int](technique, fillBuckets, fillLoadFactor, h)
	if err != nil {
		return
	}

	r := rand.New(rand.NewSource(fillSeed))
	keys := make([]K, 0, fillCount)
	start := time.Now()
	for i := 0; i < fillCount; i++ {
		k := gen(r)
		keys = append(keys, k)
		if err = hm.Set(k, i); err != nil {
			return
		}
	}
	removed := make(map[K]struct{}, fillRemove)
	for _, k := range keys[:fillRemove] {
		if _, e := hm.Pop(k); e == nil {
			removed[k] = struct{}{}
		}
	}
	elapsed := time.Since(start)

	for _, k := range keys[fillRemove:] {
		if _, gone := removed[k]; gone {
			continue
		}
		if _, err = hm.Get(k); err != nil {
			err = fmt.Errorf("%s lost a key: %w", crt.Name(technique), err)
			return
		}
	}

	result = FillResult{
		Keys:     fillKeys,
		Inserted: hm.Len() + len(removed),
		Removed:  len(removed),
		Duration: elapsed,
		Stat:     hm.Stat(fillHistogram),
	}
	return
}

func printResults(results []FillResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Technique", "Records", "Buckets", "Occupation", "Empty", "Longest", "Memory", "Time"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, res := range results {
		s := res.Stat
		table.Append([]string{
			s.Technique,
			strconv.Itoa(s.Records),
			strconv.Itoa(s.NumberOfBuckets),
			strconv.Itoa(s.Occupation),
			strconv.Itoa(s.EmptyBuckets),
			strconv.Itoa(s.LongestChain),
			strconv.Itoa(s.MemoryOccupation),
			res.Duration.Round(time.Microsecond).String(),
		})
	}
	table.Render()

	if !fillHistogram {
		return
	}
	for _, res := range results {
		printInfo("\n%s distribution (length: buckets)\n", res.Stat.Technique)
		for l, n := range res.Stat.BucketDistribution {
			if n > 0 {
				printInfo("  %3d: %d\n", l, n)
			}
		}
	}
}
