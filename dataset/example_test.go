package dataset_test

import (
	"fmt"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/dataset"
	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/kinrow"
)

// ExampleTable_Append accumulates two events with different particle content;
// the table aligns their features by label and pads the gaps with NaN.
func ExampleTable_Append() {
	first := kinrow.NewRow()
	first.Set("pT_{lep_1}(GeV)", 120)
	first.Set("pT_{lep_2}(GeV)", 45)

	second := kinrow.NewRow()
	second.Set("pT_{lep_1}(GeV)", 80)

	tbl := dataset.NewTable()
	_ = tbl.Append(first)
	_ = tbl.Append(second)

	lead, _ := tbl.Column("pT_{lep_1}(GeV)")
	sub, _ := tbl.Column("pT_{lep_2}(GeV)")
	fmt.Println("rows:", tbl.Rows())
	fmt.Println("lead:", lead)
	fmt.Println("sub:", sub)
	// Output:
	// rows: 2
	// lead: [120 80]
	// sub: [45 NaN]
}
