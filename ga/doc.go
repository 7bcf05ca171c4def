// Package ga trains fixed-topology multilayer perceptrons with a real-valued genetic
// algorithm instead of gradient descent.
//
// Every weight and bias of a network is one gene of a flat chromosome. The Optimizer
// evolves a population of chromosomes with tournament selection, uniform crossover,
// clamped uniform mutation and elitist replacement, scoring each one with a FitnessFunc.
// Subpackages provide the network (nn), the data set with k-fold partitioning (data),
// result bookkeeping and persistence (report) and the cross-validation driver (experiment).
//
// Basic usage:
//
//	// Load configuration
//	config, err := ga.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	net, err := nn.New([]int{30, 10, 1}, ga.Logistic)
//	if err != nil {
//		log.Fatalf("Error creating network: %v", err)
//	}
//
//	// One random stream drives every draw of the optimizer
//	opt, err := ga.NewOptimizer(net.NumParams(), config.GA, ga.NewSource(42))
//	if err != nil {
//		log.Fatalf("Error creating optimizer: %v", err)
//	}
//	opt.SetFitnessFactory(nn.NewFitnessFactory(net, trainX, trainY))
//
//	if err := opt.Evolve(); err != nil {
//		log.Fatalf("Error during evolution: %v", err)
//	}
//	_ = net.Decode(opt.BestIndividual().Chromosome)
package ga
