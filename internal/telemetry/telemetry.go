package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"
)

const labelCallback = "callback"

func ReportSend(sourcePort, sourceChannel, destinationPort, destinationChannel string, callback bool) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(coremetrics.LabelDestinationPort, destinationPort),
		telemetry.NewLabel(coremetrics.LabelDestinationChannel, destinationChannel),
		telemetry.NewLabel(labelCallback, strconv.FormatBool(callback)),
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "send"},
		1,
		labels,
	)
}

func ReportOnRecvPacket(sourcePort, sourceChannel, destinationPort, destinationChannel string, count uint64) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(coremetrics.LabelDestinationPort, destinationPort),
	}

	telemetry.SetGaugeWithLabels(
		[]string{"ibc", types.ModuleName, "channel", "count"},
		float32(count),
		[]metrics.Label{telemetry.NewLabel(coremetrics.LabelDestinationChannel, destinationChannel)},
	)

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "receive"},
		1,
		labels,
	)
}

func ReportCallback(sourcePort, sourceChannel string, count uint64) {
	telemetry.SetGauge(float32(count), "ibc", types.ModuleName, "callback", "count")

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "callback"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		},
	)
}
