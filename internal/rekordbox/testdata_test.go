package rekordbox

// sampleLibrary is a trimmed rekordbox.xml export used across the tests.
const sampleLibrary = `<?xml version="1.0" encoding="UTF-8"?>
<DJ_PLAYLISTS Version="1.0.0">
  <PRODUCT Name="rekordbox" Version="6.8.0" Company="AlphaTheta"/>
  <COLLECTION Entries="3">
    <TRACK TrackID="101" Name="Porcelain" Artist="Moby" Comments="Open with the pad" Location="file://localhost/Music/porcelain.mp3" AverageBpm="95.00" Tonality="5A" TotalTime="241">
      <TEMPO Inizio="0.025" Bpm="95.00" Metro="4/4" Battito="1"/>
      <POSITION_MARK Name="Outro" Type="0" Start="200.000" Num="2" Red="230" Green="40" Blue="40"/>
      <POSITION_MARK Name="Intro" Type="0" Start="0.025" Num="1"/>
    </TRACK>
    <TRACK TrackID="102" Name="Windowlicker" Artist="Aphex Twin" Location="file://localhost/Music/windowlicker.mp3"/>
    <TRACK TrackID="103" Name="Teardrop" Artist="Massive Attack" Comments="Keep the loop short">
      <POSITION_MARK Name="" Type="4" Start="10.000" End="18.000" Num="0"/>
      <POSITION_MARK Name="" Type="0" Start="4.000" Num="-1"/>
    </TRACK>
  </COLLECTION>
  <PLAYLISTS>
    <NODE Type="0" Name="ROOT" Count="2">
      <NODE Type="0" Name="Genre" Count="1">
        <NODE Type="0" Name="House" Count="1">
          <NODE Name="Summer Set" Type="1" KeyType="0" Entries="4">
            <TRACK Key="103"/>
            <TRACK Key="101"/>
            <TRACK Key="103"/>
            <TRACK Key="999"/>
          </NODE>
        </NODE>
      </NODE>
      <NODE Name="By Location" Type="1" KeyType="1" Entries="1">
        <TRACK Key="file://localhost/Music/windowlicker.mp3"/>
      </NODE>
    </NODE>
  </PLAYLISTS>
</DJ_PLAYLISTS>
`
