package engine_test

import (
	"context"
	"fmt"

	"blastn-core/engine"
	"blastn-core/seq"
)

func Example() {
	db := seq.MustParse("GACTGACATAC")
	query := seq.MustParse("AGCTGAC")

	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		panic(err)
	}
	ix, err := eng.BuildIndex(db)
	if err != nil {
		panic(err)
	}
	recs, err := eng.Align(context.Background(), ix, db, query)
	if err != nil {
		panic(err)
	}
	for _, r := range recs {
		fmt.Printf("q=%d d=%d len=%d score=%d\n", r.QueryStart, r.DataStart, r.Length(), r.Score)
	}
	// Output:
	// q=2 d=2 len=3 score=3
	// q=2 d=2 len=5 score=5
	// q=2 d=2 len=5 score=5
	// q=4 d=0 len=3 score=3
}

func ExampleXDrop_Extend() {
	db := seq.MustParse("CCAGTTT")
	query := seq.MustParse("CCATTTT")
	x := engine.NewXDrop(engine.DefaultScoring())
	r := x.Extend(engine.Seed{QueryPos: 0, DataPos: 0, Kmer: query.Window(0, 3)}, db, query)
	fmt.Println(r.QueryStart, r.QueryEnd, r.Score)
	// Output: 0 6 3
}
