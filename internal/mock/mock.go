package mock

//go:generate mockgen -destination spliterator_mock.go -package mock github.com/MasterOfBinary/splitbatch/spliterator SpliteratorForTesting
