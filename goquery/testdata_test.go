package goquery_test

// runPage mirrors the markup of a Macmillan word page with two senses, a run
// of sub-senses, example patterns and related entries.
const runPage = `<!DOCTYPE html>
<html>
<head><link rel="canonical" href="https://www.macmillandictionary.com/us/dictionary/american/run_1"></head>
<body>
<div id="innerleftcol">
  <div class="big-title"><span class="BASE">run</span></div>
  <div class="PRONS"><span class="PRON"> /rʌn/ </span><span class="pron_resource">American</span></div>
  <div class="PRONS"><span class="PRON">/rʌn/</span><span class="pron_resource">British</span><span class="QUALIFIER">strong</span></div>
  <div class="PRONS"><span class="pron_resource">no spelling</span></div>
  <div class="entry-labels">
    <span class="PART-OF-SPEECH">verb,<span class="zwsp">&#8203;</span> noun</span>
    <span class="SYNTAX-CODING">intransitive</span>
    <span class="STYLE-LEVEL">informal</span>
    <span class="GRAMMAR-TEXT">usually passive</span>
  </div>
  <span class="entry-red-star"></span><span class="entry-red-star"></span><span class="entry-red-star"></span>
  <ol>
    <li class="SENSE-BODY">
      <span class="SENSE-NUM">1</span>
      <div class="SENSE-CONTENT">
        <span class="SYNTAX-CODING">intransitive</span>
        <span class="DEFINITION">to move quickly using your legs</span>
        <div class="EXAMPLES"><p class="EXAMPLE">I ran all the way home.</p></div>
        <div class="EXAMPLES"><span class="PATTERNS-COLLOCATIONS">run across/down/into</span><p class="EXAMPLE">She ran across the road.</p></div>
        <div class="EXAMPLES"><p class="EXAMPLE">He ran into the room.</p></div>
        <div class="EXAMPLES"><span class="PATTERNS-COLLOCATIONS">run after</span><p class="EXAMPLE">The dog ran after the ball.</p></div>
        <ol>
          <li class="SUB-SENSE-BODY">
            <div class="SUB-SENSE-CONTENT">
              <span class="DIALECT">British</span>
              <span class="QUICK-DEFINITION">to run as a sport</span>
              <div class="EXAMPLES"><p class="EXAMPLE">She runs every morning.</p></div>
            </div>
          </li>
          <li class="SUB-SENSE-BODY">
            <div class="SUB-SENSE-CONTENT">
              <span class="RESTRICTION-CLASS">never progressive</span>
              <span class="SAMEAS">same as <a href="/dictionary/american/race">race</a></span>
            </div>
          </li>
        </ol>
      </div>
    </li>
    <li class="SENSE-BODY">
      <span class="SENSE-NUM">2</span>
      <div class="SENSE-CONTENT">
        <span class="SYNTAX-CODING">transitive</span>
        <span class="DEFINITION">to be in charge of a business</span>
      </div>
    </li>
  </ol>
  <div class="related-entries">
    <ul>
      <li class="related-entries-item"><a href="/dictionary/american/run_2"><span class="BASE">run</span> <span class="PART-OF-SPEECH">noun</span></a></li>
      <li class="related-entries-item"><a href="/dictionary/american/running"><span class="BASE">running</span></a></li>
      <li class="related-entries-item"><a href="/dictionary/american/run-up"><span class="BASE">run-up</span></a></li>
      <li class="related-entries-item"><a href="/dictionary/american/run_3">run</a></li>
    </ul>
  </div>
</div>
</body>
</html>`

// noMatchPage mirrors the site's search-results page for an unknown word.
const noMatchPage = `<!DOCTYPE html>
<html>
<body>
<div id="search-results">
  <h1>Sorry, no search result for <span>runx</span></h1>
  <p class="entry-bold">Did you mean:</p>
  <ul class="display-list">
    <li><a href="/dictionary/american/run">run</a></li>
    <li><a href="/dictionary/american/rune">rune</a></li>
    <li><a href="/dictionary/american/runt">runt</a></li>
  </ul>
</div>
</body>
</html>`
