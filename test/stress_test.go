//go:build stress

package test

import (
	"errors"
	"fmt"
	"github.com/gostonefire/xcontainers"
	"github.com/gostonefire/xcontainers/crt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

type key [20]byte
type value [10]byte

type record struct {
	k key
	v value
}

func createTestdata(r *rand.Rand, amount int) []record {
	data := make([]record, amount)
	for i := range data {
		r.Read(data[i].k[:])
		r.Read(data[i].v[:])
	}
	return data
}

func setTestdata(data []record, hm *xcontainers.HashMap[key, value]) error {
	for _, rec := range data {
		if err := hm.Set(rec.k, rec.v); err != nil {
			return err
		}
	}
	return nil
}

func popTestdata(data []record, hm *xcontainers.HashMap[key, value]) error {
	for _, rec := range data {
		v, err := hm.Pop(rec.k)
		if err != nil {
			return err
		}
		if v != rec.v {
			return fmt.Errorf("popped wrong value")
		}
	}
	return nil
}

func getTestdata(data []record, hm *xcontainers.HashMap[key, value], shouldNotExist bool) error {
	for _, rec := range data {
		v, err := hm.Get(rec.k)
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("get should not get data")
			} else if !errors.Is(err, crt.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if v != rec.v {
				return fmt.Errorf("got wrong value")
			}
		}
	}
	return nil
}

type TestCaseStressTest struct {
	crtName   string
	buckets   int
	crt       int
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{crtName: "PooledChaining", buckets: 16, crt: crt.PooledChaining, nTestdata: 1000000},
			{crtName: "SeparateChaining", buckets: 16, crt: crt.SeparateChaining, nTestdata: 1000000},
			{crtName: "LinearProbing", buckets: 16, crt: crt.LinearProbing, nTestdata: 1000000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and rehashes for %s", test.crtName), func(t *testing.T) {
				// Prepare test data
				r := rand.New(rand.NewSource(123))
				set1 := createTestdata(r, test.nTestdata)
				set2 := createTestdata(r, test.nTestdata)
				set3 := createTestdata(r, test.nTestdata)

				// Prepare hash map
				hm, _, err := xcontainers.NewHashMap[key, value](test.crt, test.buckets, 0, nil)
				assert.NoError(t, err, "create hash map")

				// Set first two sets of test data
				err = setTestdata(set1, hm)
				assert.NoError(t, err, "set test set 1")
				err = setTestdata(set2, hm)
				assert.NoError(t, err, "set test set 2")

				// Remove first set
				err = popTestdata(set1, hm)
				assert.NoError(t, err, "pop test set 1")

				// Set third set of test data
				err = setTestdata(set3, hm)
				assert.NoError(t, err, "set test set 3")

				// Check all three test sets
				err = getTestdata(set1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, hm, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(set3, hm, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set
				err = popTestdata(set2, hm)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata(set1, hm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, hm, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(set3, hm, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := hm.Stat(true)
				assert.Equal(t, test.nTestdata, stat.Records, "correct number of records")
				assert.Equal(t, test.nTestdata, hm.Len(), "correct length")
				assert.GreaterOrEqual(t, stat.Occupation, stat.Records, "occupation covers records")

				records := 0
				for l, n := range stat.BucketDistribution {
					if test.crt == crt.LinearProbing {
						records += n
					} else {
						records += l * n
					}
				}
				assert.Equal(t, test.nTestdata, records, "distribution accounts for all records")

				// Iteration visits every remaining record once
				seen := 0
				for k, v := range hm.Table().All() {
					got, err := hm.Get(k)
					assert.NoError(t, err)
					assert.Equal(t, got, v)
					seen++
				}
				assert.Equal(t, test.nTestdata, seen, "iterated all records")
			})
		}
	})
}

func TestDifferential(t *testing.T) {
	t.Run("random operations match a built in map", func(t *testing.T) {
		for _, technique := range []int{crt.PooledChaining, crt.SeparateChaining, crt.LinearProbing} {
			t.Run(crt.Name(technique), func(t *testing.T) {
				// Prepare
				r := rand.New(rand.NewSource(int64(technique)))
				hm, _, err := xcontainers.NewHashMap[int, int](technique, 4, 0.5, nil)
				assert.NoError(t, err)
				want := make(map[int]int)

				// Execute
				for i := 0; i < 2000000; i++ {
					k := r.Intn(50000)
					switch r.Intn(3) {
					case 0:
						_, err = hm.Pop(k)
						_, ok := want[k]
						assert.Equal(t, ok, err == nil, "pop of %d", k)
						delete(want, k)
					default:
						err = hm.Set(k, i)
						assert.NoError(t, err)
						want[k] = i
					}
				}

				// Check
				assert.Equal(t, len(want), hm.Len())
				for k, v := range want {
					got, err := hm.Get(k)
					assert.NoError(t, err)
					assert.Equal(t, v, got)
				}
			})
		}
	})
}
