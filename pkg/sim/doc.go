// Package sim is a digital twin of the edge data runtime.
//
// A Scenario describes the topics published by the twin (the discover file)
// and a script of value changes (the events file). Runtime implements
// runtime.Runtime on top of a scenario so applications can be developed and
// tested without the real bus, and Player replays the script against it:
//
//	sc, err := sim.LoadScenarioCSV("discover.csv", "events.csv")
//	if err != nil {
//	    return err
//	}
//	rt := sim.NewRuntime(sc, sim.RuntimeConfig{})
//	c, err := client.New(rt, client.DefaultConfig())
//	...
//	go sim.NewPlayer(rt, sim.PlayerConfig{Loop: true}).Run(ctx)
//
// # File Formats
//
// Both CSV files are ';' separated and start with a header row. The discover
// file uses the columns topic;type;source with types UINT32, INT32, UINT64,
// INT64, FLOAT32, DOUBLE64 and sources READ or WRITE. The events file uses
// topic;quality;value;wait_ms. Quality is a '|' separated list of the
// shorthands NT, OV, OB, T, SB and IV; an empty column means valid.
//
// Leading event rows with wait_ms 0 are initial values and are not replayed.
// A row whose topic is GOTO<n> makes every repetition after the first pass
// restart at line n of the events file.
//
// Scenarios can also be written as a single YAML document, see
// LoadScenarioYAML.
package sim
